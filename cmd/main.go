package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/vote-ledger/ballot"
	"github.com/luca-patrignani/vote-ledger/ledger"
)

const (
	// numVotes is the number of blocks appended after genesis.
	numVotes = 10
	// indentStep is how far each block is indented past its predecessor.
	indentStep = 2
	// hashPolicy reproduces the reference output when set to ledger.Cumulative.
	hashPolicy = ledger.PerBlock
)

var suite suites.Suite = suites.MustFind("Ed25519")

func main() {
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	if err := run(logger); err != nil {
		logger.Error("vote failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	generator, err := ballot.NewGenerator(ballot.DefaultParties())
	if err != nil {
		return err
	}
	logger.Debug("generator seeded", "seed", fmt.Sprintf("%x", generator.Seed()))

	bc := ledger.NewBlockchain(
		ledger.WithHashPolicy(hashPolicy),
		ledger.WithLogger(logger),
	)
	if err := castVotes(bc, generator, numVotes); err != nil {
		return err
	}
	if err := bc.Verify(); err != nil {
		return fmt.Errorf("chain failed verification: %w", err)
	}

	priv := suite.Scalar().Pick(suite.RandomStream())
	pub := suite.Point().Mul(priv, nil)
	seal, err := bc.Seal(suite, priv)
	if err != nil {
		return err
	}

	pterm.DefaultHeader.WithFullWidth().Println("Print chain")
	pterm.Println(renderChain(bc, indentStep))

	table, err := renderTally(ballot.DefaultParties().Tally(bc.All()))
	if err != nil {
		return err
	}
	pterm.Println(table)
	pterm.Println(renderSeal(seal, bc.VerifySeal(suite, pub, seal)))

	pterm.Success.Printfln("Recorded %d votes", bc.Len())
	return nil
}

// castVotes appends the genesis vote followed by n more, all drawn from gen.
func castVotes(bc *ledger.Blockchain, gen *ballot.Generator, n int) error {
	for i := 0; i <= n; i++ {
		if _, err := bc.Append(string(gen.Next())); err != nil {
			return fmt.Errorf("failed to cast vote %d: %w", i, err)
		}
	}
	return nil
}
