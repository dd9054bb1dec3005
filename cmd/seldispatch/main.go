// Seldispatch generates optimized selector dispatchers: it searches for
// magic numbers mapping a set of function selectors to distinct bytes and
// prints the resulting jump-table bytecode layout.
//
// Usage:
//
//	seldispatch generate -n 20 --attempts 1000
//	seldispatch generate --sigs 'transfer(address,uint256),balanceOf(address)'
//
// Flags:
//
//	-n          Number of random selectors to generate (default: 20)
//	--sigs      Comma-separated ABI signatures instead of random selectors
//	--attempts  Attempt budget for the magic number search (default: 1000)
//	--workers   Number of parallel search workers (default: 1)
//	--seed      Seed for deterministic runs (default: random)
//	--preamble  Dispatcher preamble size in bytes (default: 78)
//	--slot      Jump-table slot size in bytes (default: 6)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seldispatch/seldispatch"
	selerrors "github.com/seldispatch/seldispatch/errors"
	"github.com/seldispatch/seldispatch/render"
	"github.com/seldispatch/seldispatch/selgen"
)

var (
	fCount    int
	fSigs     string
	fAttempts uint64
	fWorkers  int
	fSeed     uint64
	fPreamble int
	fSlot     int
)

var rootCmd = &cobra.Command{
	Use:   "seldispatch",
	Short: "generate perfect-hash jump table dispatchers for EVM function selectors",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "search for magic numbers and print the dispatcher layout",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&fCount, "count", "n", 20, "number of random selectors to generate")
	generateCmd.Flags().StringVar(&fSigs, "sigs", "", "comma-separated ABI signatures (overrides -n)")
	generateCmd.Flags().Uint64Var(&fAttempts, "attempts", 1000, "attempt budget for the search")
	generateCmd.Flags().IntVar(&fWorkers, "workers", 1, "number of parallel search workers")
	generateCmd.Flags().Uint64Var(&fSeed, "seed", 0, "seed for deterministic runs (default: random)")
	generateCmd.Flags().IntVar(&fPreamble, "preamble", seldispatch.DefaultPreambleSize, "dispatcher preamble size in bytes")
	generateCmd.Flags().IntVar(&fSlot, "slot", seldispatch.DefaultSlotSize, "jump-table slot size in bytes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		selectors []uint32
		err       error
	)
	if fSigs != "" {
		selectors, err = selgen.FromSignatures(strings.Split(fSigs, ","))
		if err != nil {
			return err
		}
	} else {
		seed := fSeed
		if !cmd.Flags().Changed("seed") {
			seed = uint64(os.Getpid()) // distinct sets across runs; search seeds separately
		}
		selectors = selgen.Random(seed, fCount)
	}
	addresses := selgen.Addresses(len(selectors))

	bindings, err := seldispatch.NewBindings(selectors, addresses)
	if err != nil {
		return err
	}

	opts := []seldispatch.SearchOption{
		seldispatch.WithWorkers(fWorkers),
		seldispatch.WithProgress(func(p seldispatch.Progress) {
			log.Info().
				Uint64("attempt", p.Attempt).
				Dur("elapsed", p.Elapsed).
				Str("max_byte", hexByte(p.MaxByte)).
				Msg("found better solution")
		}),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, seldispatch.WithSeed(fSeed))
	}

	cfg := seldispatch.TableConfig{PreambleSize: fPreamble, SlotSize: fSlot}
	rep, err := seldispatch.Generate(context.Background(), bindings, fAttempts, cfg, opts...)
	if errors.Is(err, selerrors.ErrNoSolution) {
		log.Error().Uint64("attempts", fAttempts).Msg("could not find magic numbers within max attempts")
		return err
	}
	if err != nil {
		return err
	}

	log.Info().
		Uint64("attempt", rep.Result.Attempt).
		Dur("elapsed", rep.Result.Elapsed).
		Str("max_byte", hexByte(rep.Result.MaxByte)).
		Msg("best solution")

	return render.Program(os.Stdout, rep)
}

func hexByte(b byte) string {
	return fmt.Sprintf("0x%02x", b)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
