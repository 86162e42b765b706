// Command k256vec prints a secp256k1 scalar multiplication test vector
// computed with Montgomery-domain Jacobian arithmetic.
//
// Without arguments, it prints the bit decomposition of the default
// scalar, the Jacobian coordinates X, Y and Z of the result, and the
// affine coordinates x and y. Inputs can be overridden with flags, a
// configuration file (--config) or K256VEC_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doubleodd/go-k256vec/internal/vector"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "K256VEC"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "k256vec",
		Short:        "Generate a secp256k1 scalar multiplication test vector",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addFlags(cmd.Flags())
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	def := vector.DefaultConfig()
	flags.String("base-x", def.BaseX, "base point X coordinate (Jacobian, Montgomery form, hex)")
	flags.String("base-y", def.BaseY, "base point Y coordinate (Jacobian, Montgomery form, hex)")
	flags.String("base-z", def.BaseZ, "base point Z coordinate (Jacobian, Montgomery form, hex)")
	flags.String("scalar", def.Scalar, "scalar multiplier (hex, strictly positive)")
	flags.String("affine-source", string(def.AffineSource),
		fmt.Sprintf("point the affine coordinates are computed from (%s|%s)", vector.AffineFromBase, vector.AffineFromResult))
	flags.StringP("format", "f", def.Format,
		fmt.Sprintf("output format (%s|%s|%s)", vector.FormatText, vector.FormatJSON, vector.FormatYAML))
	flags.Bool("cross-check", false, "verify the result against an independent secp256k1 implementation")
	flags.StringP("config", "c", "", "configuration file (yaml, json or toml)")
	flags.BoolP("verbose", "v", false, "enable debug logging on stderr")
}

func run(v *viper.Viper, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, v.GetBool("verbose"))
	defer logger.Sync() //nolint:errcheck

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration file %s", path)
		}
		logger.Debug("configuration file loaded", zap.String("path", v.ConfigFileUsed()))
	}

	var cfg vector.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "decoding configuration")
	}

	vec, err := vector.Generate(cfg, logger)
	if err != nil {
		logger.Error("failed to generate test vector", zap.Error(err))
		return err
	}
	return vector.Write(stdout, vec, cfg.Format)
}

// newLogger builds a console logger writing to w; only warnings and
// errors are emitted unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller()).Named("k256vec")
}
