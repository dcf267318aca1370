package cmd

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/quickwritereader/filovec/config"
	"github.com/quickwritereader/filovec/vector"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"k8s.io/klog/v2"
)

// NewRootCmd builds the datainfo command tree. Each call returns an
// independent tree with its own configuration.
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "datainfo",
		Short: "Encode and inspect DataInfo records",
		Long: `datainfo builds and reads the two-byte DataInfo struct
([nbits][signed]) that describes integer column vectors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			*cfg = *loaded
			setupLogging(cfg.Logging.Verbosity)
			klog.V(2).InfoS("configuration loaded",
				"format", cfg.Output.Format,
				"initialSize", cfg.Builder.InitialSize,
				"maxSize", cfg.Builder.MaxSize)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: hex, json or msgpack")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 0, "log verbosity")

	rootCmd.AddCommand(newEncodeCmd(cfg), newDecodeCmd(cfg), newLayoutCmd())
	return rootCmd
}

// Execute runs the command line tool and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("verbosity") {
		cfg.Logging.Verbosity, _ = cmd.Flags().GetInt("verbosity")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(verbosity int) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("v", strconv.Itoa(verbosity))
}

// writeValue prints v in the configured output format.
func writeValue(w io.Writer, format string, v vector.Value) error {
	switch format {
	case config.FormatJSON:
		data, err := vector.EncodeJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatMsgpack:
		data, err := msgpack.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	default:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}
}
