package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/vote-ledger/ballot"
	"github.com/luca-patrignani/vote-ledger/ledger"
)

// renderChain lists every block oldest first, each one indented step columns
// further than the one before.
func renderChain(bc *ledger.Blockchain, step int) string {
	var sb strings.Builder
	indent := 0
	for _, b := range bc.All() {
		pad := strings.Repeat(" ", indent)
		fmt.Fprintf(&sb, "%sPrevious hash\t%d\n", pad, b.PrevHash)
		fmt.Fprintf(&sb, "%sBlock hash\t%d\n", pad, b.Hash)
		fmt.Fprintf(&sb, "%sTransaction\t%s\n", pad, b.Payload)
		fmt.Fprintf(&sb, "%s\n", pad)
		indent += step
	}
	return sb.String()
}

func renderTally(counts []ballot.Count) (string, error) {
	data := pterm.TableData{{"Party", "Votes"}}
	for _, c := range counts {
		name := string(c.Party)
		if name == "" {
			name = "(unknown)"
		}
		data = append(data, []string{name, strconv.Itoa(c.Votes)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderSeal(s ledger.Seal, verifyErr error) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	status := pterm.LightGreen("valid")
	if verifyErr != nil {
		status = pterm.LightRed("invalid: " + verifyErr.Error())
	}
	return pbox.WithTitle(pterm.LightYellow("|SEAL|")).WithTitleTopCenter().Sprintf(
		"Blocks: %d\nTail hash: %d\nSignature: %x\n%s", s.Length, s.TailHash, s.Signature, status)
}
