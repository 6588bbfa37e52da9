package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/layoutlab/warehouse-analytics/pkg/version"
	"github.com/spf13/cobra"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

type VersionOptions struct {
	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print layout analytics version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(o.Output) > 0 && !funk.Contains([]string{jsonFormat, yamlFormat}, o.Output) {
				return fmt.Errorf("output format must be one of %s", strings.Join([]string{jsonFormat, yamlFormat}, ", "))
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: (json, yaml).")
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, out io.Writer) error {
	versionInfo := version.Get()

	switch o.Output {
	case jsonFormat:
		data, err := json.MarshalIndent(versionInfo, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version to JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case yamlFormat:
		data, err := yaml.Marshal(versionInfo)
		if err != nil {
			return fmt.Errorf("failed to marshal version to YAML: %w", err)
		}
		_, err = fmt.Fprint(out, string(data))
		return err
	default:
		_, err := fmt.Fprintf(out, "Layout Analytics Version: %s\n", versionInfo.String())
		return err
	}
}
