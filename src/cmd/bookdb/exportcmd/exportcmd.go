package exportcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bookdb/src/internal/store"
)

// New returns the export command: dump all records as YAML or JSON.
func New() *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "export <data-file>",
		Short: "Export all book records as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := store.Open(args[0])
			if err != nil {
				return err
			}
			data, err := marshal(s, format)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file path (default stdout)")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func marshal(s *store.Store, format string) ([]byte, error) {
	books := s.Books()
	switch format {
	case "yaml":
		return yaml.Marshal(books)
	case "json":
		return json.MarshalIndent(books, "", "  ")
	default:
		return nil, fmt.Errorf("unknown format: %s (want yaml or json)", format)
	}
}
