package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/kitties/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome     = "home"
	flagLogLevel = "log_level"
	flagAs       = "as"
)

// cli keeps the state shared by all commands of a single invocation.
type cli struct {
	v      *viper.Viper
	home   string
	cfg    Config
	logger log.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "kittyd",
		Short: "Deterministic kitty ownership registry",
		Long: `kittyd keeps a registry of kitties in a local database.

Every command that changes the state is executed as a single block and
committed only when it succeeds. Callers are identified by a name given
with --as.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
	}

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".kittyd")
	root.PersistentFlags().String(flagHome, defaultHome, "directory to store files under")
	root.PersistentFlags().String(flagLogLevel, "", "log level: debug, info, error or none")
	root.PersistentFlags().String(flagAs, "", "name of the caller")
	_ = c.v.BindPFlag("home", root.PersistentFlags().Lookup(flagHome))
	_ = c.v.BindPFlag("log_level", root.PersistentFlags().Lookup(flagLogLevel))

	root.AddCommand(
		c.initCmd(),
		c.mintCmd(),
		c.priceCmd(),
		c.transferCmd(),
		c.buyCmd(),
		c.sendCmd(),
		c.showCmd(),
		c.ownedCmd(),
		c.balanceCmd(),
		c.countCmd(),
		c.auditCmd(),
	)
	return root
}

// load reads the configuration file from the home directory. Values can be
// overridden by KITTYD_* environment variables and command line flags.
func (c *cli) load(cmd *cobra.Command, args []string) error {
	defaults := DefaultConfig()
	c.v.SetDefault("chain_id", defaults.ChainID)
	c.v.SetDefault("log_level", defaults.LogLevel)
	c.v.SetEnvPrefix("KITTYD")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.home = c.v.GetString("home")
	path := filepath.Join(c.home, configFileName)
	if _, err := os.Stat(path); err == nil {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return errors.Wrapf(errors.ErrInput, "reading config: %s", err)
		}
	}
	if err := c.v.Unmarshal(&c.cfg); err != nil {
		return errors.Wrapf(errors.ErrInput, "parsing config: %s", err)
	}

	logger := log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr())).With("module", "kittyd")
	level, err := log.AllowLevel(c.cfg.LogLevel)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	c.logger = log.NewFilter(logger, level)
	return nil
}

func (c *cli) dbPath() string {
	return filepath.Join(c.home, "data", "kittyd")
}
