package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kapp "github.com/iov-one/kitties/cmd/kittyd/app"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/x/kitty"
	"github.com/spf13/cobra"
)

const genesisFileName = "genesis.json"

func (c *cli) initCmd() *cobra.Command {
	var (
		chainID  string
		seed     string
		maxOwned uint32
		funds    []string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the home directory and the chain state",
		Long: `Write the default configuration and the genesis file into the home
directory, then initialize the chain state from that genesis.

Examples:
  # Single owner limit of five kitties and two funded accounts
  kittyd init --max-owned 5 --fund "alice=100 MONY" --fund "bob=80 MONY"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := c.cfg
			if cmd.Flags().Changed("chain-id") {
				conf.ChainID = chainID
			}
			if cmd.Flags().Changed("seed") {
				conf.Seed = seed
			}
			if _, err := writeConfig(c.home, conf); err != nil {
				return err
			}
			c.cfg = conf

			accounts := make([]kapp.GenesisAccount, 0, len(funds))
			for _, f := range funds {
				acct, err := parseFund(f)
				if err != nil {
					return err
				}
				accounts = append(accounts, acct)
			}
			gen, err := kapp.Genesis(conf.ChainID, maxOwned, accounts)
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(gen, "", "  ")
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			if err := os.WriteFile(filepath.Join(c.home, genesisFileName), raw, 0o600); err != nil {
				return errors.Wrapf(errors.ErrInput, "writing genesis: %s", err)
			}

			return c.withNode(func(n *node) error {
				if err := n.app.InitChain(gen); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "initialized chain %s in %s\n", gen.ChainID, c.home)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&chainID, "chain-id", "", "chain identifier (default from config)")
	cmd.Flags().StringVar(&seed, "seed", "", "fixed entropy seed, for development only")
	cmd.Flags().Uint32Var(&maxOwned, "max-owned", kitty.DefaultMaxOwned, "number of kitties a single owner can hold")
	cmd.Flags().StringArrayVar(&funds, "fund", nil, `initial balance as "NAME=AMOUNT" (repeatable)`)
	return cmd
}

func parseFund(s string) (kapp.GenesisAccount, error) {
	chunks := strings.SplitN(s, "=", 2)
	if len(chunks) != 2 {
		return kapp.GenesisAccount{}, errors.Wrapf(errors.ErrInput, "fund %q, want NAME=AMOUNT", s)
	}
	addr, err := parseAddress(chunks[0])
	if err != nil {
		return kapp.GenesisAccount{}, err
	}
	amount, err := coin.ParseHumanFormat(strings.TrimSpace(chunks[1]))
	if err != nil {
		return kapp.GenesisAccount{}, errors.Wrapf(err, "fund %q", s)
	}
	return kapp.GenesisAccount{Address: addr, Amount: amount}, nil
}
