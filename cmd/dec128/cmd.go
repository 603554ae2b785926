package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/decimal128"
	"github.com/calebcase/decimal128/compare"
	"github.com/calebcase/decimal128/control"
	"github.com/calebcase/decimal128/decimal"
	"github.com/calebcase/decimal128/integer"
)

// env is shared by the subcommands once the root command has resolved the
// configuration.
type env struct {
	configFile string
	rounding   string
	logLevel   string

	mode decimal128.RoundingMode
	log  *zap.Logger
}

const rootLong = `dec128 works with IEEE 754-2008 decimal128 values.

Negative operands such as -0.005 or -Inf are read as operands, not flags,
so flags must be given before them.`

func newRootCommand() *cobra.Command {
	e := &env{
		log: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "dec128",
		Short:         "dec128 works with IEEE 754-2008 decimal128 values.",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configFile, "config", "", "TOML configuration file")
	flags.StringVar(&e.rounding, "rounding", "", "rounding mode (e.g. TiesToEven, floor, ceiling, trunc, half-up)")
	flags.StringVar(&e.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		e.formatCommand(),
		e.fromDoubleCommand(),
		e.compareCommand(),
		e.arithCommand(),
		e.bsonCommand(),
		e.bsvCommand(),
		e.bsvDecodeCommand(),
		e.bsvIntCommand(),
		e.bsvIntDecodeCommand(),
	)

	return root
}

// execute runs root with args after separating negative operands.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(separateOperands(args))

	return root.Execute()
}

// separateOperands inserts "--" before the first negative number so that
// pflag does not read it as a shorthand flag.
func separateOperands(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if !negativeOperand(arg) {
			continue
		}

		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")

		return append(out, args[i:]...)
	}

	return args
}

func negativeOperand(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	if c := arg[1]; c == '.' || (c >= '0' && c <= '9') {
		return true
	}

	switch strings.ToLower(arg[1:]) {
	case "inf", "infinity", "nan":
		return true
	}

	return false
}

// setup resolves the configuration: defaults, then the config file, then
// flags.
func (e *env) setup(cmd *cobra.Command) (err error) {
	cfg := DefaultConfig()

	if e.configFile != "" {
		cfg, err = LoadConfig(e.configFile)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("rounding") {
		cfg.Rounding = e.rounding
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = e.logLevel
	}

	e.mode, err = cfg.RoundingMode()
	if err != nil {
		return err
	}

	e.log, err = cfg.Logger()
	if err != nil {
		return err
	}

	e.log.Debug("configured",
		zap.String("config", e.configFile),
		zap.Stringer("rounding", e.mode),
		zap.String("log-level", cfg.LogLevel),
	)

	return nil
}

// parse parses s with the configured rounding mode and logs any raised
// flags.
func (e *env) parse(s string) decimal128.Decimal {
	d, flags := decimal128.Parse(s, e.mode)
	if flags != decimal128.NoFlag {
		e.log.Info("parsed with flags", zap.String("input", s), zap.Stringer("flags", flags))
	}

	return d
}

func (e *env) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <decimal>...",
		Short: "Print the canonical form of each decimal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), e.parse(arg))
			}

			return nil
		},
	}
}

func (e *env) fromDoubleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-double <float>...",
		Short: "Convert binary doubles to decimals with 15 significant digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return Error.Wrap(err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), decimal128.FromFloat64(f, e.mode))
			}

			return nil
		},
	}
}

func (e *env) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print -1, 0 or 1 ordering two decimals (NaN first)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), compare.Decimals(e.parse(args[0]), e.parse(args[1])))

			return nil
		},
	}
}

var operations = map[string]func(x, y decimal128.Decimal, mode decimal128.RoundingMode) (decimal128.Decimal, decimal128.Flags){
	"add":      decimal128.Decimal.Add,
	"sub":      decimal128.Decimal.Sub,
	"mul":      decimal128.Decimal.Mul,
	"div":      decimal128.Decimal.Div,
	"quantize": decimal128.Decimal.Quantize,
}

func (e *env) arithCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "arith <add|sub|mul|div|quantize> <a> <b>",
		Short: "Print the result of an operation and the flags it raised",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operations[strings.ToLower(args[0])]
			if !ok {
				return Error.New("unknown operation: %q", args[0])
			}

			result, flags := op(e.parse(args[1]), e.parse(args[2]), e.mode)

			e.log.Debug("arith",
				zap.String("op", args[0]),
				zap.Stringer("result", result),
				zap.Stringer("flags", flags),
			)

			fmt.Fprintln(cmd.OutOrStdout(), result, flags)

			return nil
		},
	}
}

func (e *env) bsonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bson <decimal>...",
		Short: "Print the BSON decimal128 payload of each decimal in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				_, data, err := e.parse(arg).MarshalBSONValue()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			}

			return nil
		},
	}
}

func (e *env) bsvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bsv <decimal|null>...",
		Short: "Print the BSV encoding of the decimals as one hex stream",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := bytes.NewBuffer(nil)
			enc := decimal.NewEncoder(decimal.Schema{Nullable: true}, control.NewEncoder(buf))

			for _, arg := range args {
				var err error

				if strings.EqualFold(arg, "null") {
					err = enc.EncodeNull()
				} else {
					err = enc.Encode(e.parse(arg))
				}

				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

			return nil
		},
	}
}

func (e *env) bsvDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bsv-decode <hex>",
		Short: "Print the decimals of a hex BSV stream, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return Error.Wrap(err)
			}

			cd := control.NewDecoderSize(bytes.NewReader(data), decimal.MaxSize)
			dec := decimal.NewDecoder(decimal.Schema{Nullable: true}, cd)

			for {
				v, valid, err := dec.Decode()
				if err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}

					return err
				}

				if !valid {
					fmt.Fprintln(cmd.OutOrStdout(), "null")

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
		},
	}
}

// integerSchema is used for the integer BSV commands.
var integerSchema = integer.Schema{Signed: true, Nullable: true}

func (e *env) bsvIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bsv-int <integer|null>...",
		Short: "Print the BSV encoding of signed integers as one hex stream",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := bytes.NewBuffer(nil)
			enc := integer.NewEncoder(integerSchema, control.NewEncoder(buf))

			for _, arg := range args {
				if strings.EqualFold(arg, "null") {
					if err := enc.Encode(nil); err != nil {
						return err
					}

					continue
				}

				i, ok := new(big.Int).SetString(arg, 10)
				if !ok {
					return Error.New("invalid integer: %q", arg)
				}

				if err := enc.Encode(integer.FromBigInt(i)); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

			return nil
		},
	}
}

func (e *env) bsvIntDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bsv-int-decode <hex>",
		Short: "Print the signed integers of a hex BSV stream, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return Error.Wrap(err)
			}

			dec := integer.NewDecoder(integerSchema, control.NewDecoder(bytes.NewReader(data)))

			for {
				b := &integer.Block{}

				err := dec.Decode(b)
				if err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}

					return err
				}

				if b.Value == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "null")

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), b.BigInt())
			}
		},
	}
}
