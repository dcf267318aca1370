package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/quickwritereader/filovec/config"
	"github.com/quickwritereader/filovec/vector"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newEncodeCmd(cfg *config.Config) *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode [nbits[:signed]...]",
		Short: "Append DataInfo records to a new buffer",
		Long: `Appends one DataInfo per argument (or the one given by --nbits/--signed)
and prints the resulting buffer. nbits outside 0-255 keeps its low byte.`,
		Example: `  datainfo encode 7:true 300
  datainfo encode --nbits 12 --signed -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := encodeInputs(cmd, args)
			if err != nil {
				return err
			}

			b := cfg.NewBuilder()
			defer b.Release()

			offsets := make([]int, 0, len(values))
			for _, in := range values {
				off, err := vector.CreateDataInfo(b, in.nbits, in.signed)
				if err != nil {
					klog.ErrorS(err, "append failed", "nbits", in.nbits, "records", len(offsets))
					return err
				}
				klog.V(3).InfoS("appended", "offset", off, "nbits", in.nbits, "signed", in.signed)
				offsets = append(offsets, off)
			}

			out := cmd.OutOrStdout()
			buf := b.Bytes()
			if cfg.Output.Format == config.FormatHex {
				fmt.Fprintln(out, hex.EncodeToString(buf))
			}
			for _, off := range offsets {
				v, err := vector.GetDataInfo(buf, off).Unpack()
				if err != nil {
					return err
				}
				if cfg.Output.Format == config.FormatHex {
					fmt.Fprintf(out, "%d\t", off)
				}
				if err := writeValue(out, cfg.Output.Format, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	encodeCmd.Flags().Int("nbits", 0, "bit width of a single record")
	encodeCmd.Flags().Bool("signed", false, "signedness of a single record")
	return encodeCmd
}

type encodeInput struct {
	nbits  int
	signed bool
}

func encodeInputs(cmd *cobra.Command, args []string) ([]encodeInput, error) {
	if len(args) == 0 {
		if !cmd.Flags().Changed("nbits") {
			return nil, fmt.Errorf("encode: give nbits[:signed] arguments or --nbits")
		}
		nbits, _ := cmd.Flags().GetInt("nbits")
		signed, _ := cmd.Flags().GetBool("signed")
		return []encodeInput{{nbits: nbits, signed: signed}}, nil
	}

	inputs := make([]encodeInput, 0, len(args))
	for _, arg := range args {
		in, err := parseEncodeArg(arg)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func parseEncodeArg(arg string) (encodeInput, error) {
	nbitsStr, signedStr, hasSigned := strings.Cut(arg, ":")

	nbits, err := strconv.Atoi(nbitsStr)
	if err != nil {
		return encodeInput{}, fmt.Errorf("encode: bad nbits in %q: %w", arg, err)
	}
	in := encodeInput{nbits: nbits}
	if hasSigned {
		in.signed, err = strconv.ParseBool(signedStr)
		if err != nil {
			return encodeInput{}, fmt.Errorf("encode: bad signed flag in %q: %w", arg, err)
		}
	}
	return in, nil
}
