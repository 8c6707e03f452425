// Package textparser implements the plain-text statement front-end. The
// upstream converter flattens each statement page to lines; a line that
// starts with the statement's month-day marker (MM-DD) opens a new
// transaction, and following lines without a marker extend its
// description until enough monetary tokens have accumulated to finalize
// it. Noise lines that neither open nor extend a transaction are skipped.
package textparser

import (
	"regexp"
	"strings"

	"statement-extract/internal/models"
	"statement-extract/internal/moneytoken"
	"statement-extract/internal/textutils"
)

var anchorPattern = regexp.MustCompile(`^\d{2}-\d{2}\b`)

// IsAnchorLine reports whether line starts a new transaction, i.e. begins
// with the two-digit month, dash, two-digit day marker.
func IsAnchorLine(line string) bool {
	return anchorPattern.MatchString(line)
}

// State is the accumulator state of the line machine.
type State int

const (
	// StateIdle means no transaction is open.
	StateIdle State = iota
	// StateAccumulating means a pending transaction is collecting
	// description text and waiting for its amount and balance tokens.
	StateAccumulating
)

type pendingTransaction struct {
	date        string
	description string
}

// Machine is the explicit two-state line classifier. Feed it each
// non-empty trimmed line via OnAnchorLine or OnContinuationLine and close
// it with OnEndOfInput; every transition returns zero or one finalized
// transaction.
type Machine struct {
	pending *pendingTransaction
}

// NewMachine returns a machine in the idle state.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the current accumulator state.
func (m *Machine) State() State {
	if m.pending == nil {
		return StateIdle
	}
	return StateAccumulating
}

// OnAnchorLine opens a new pending transaction for the given anchor line
// and immediately attempts finalization, since date and numbers often
// share a line. A previously open pending transaction is abandoned, never
// emitted: without its own numbers it would attach the wrong amounts to
// the wrong description.
func (m *Machine) OnAnchorLine(line string) (models.Transaction, bool) {
	m.pending = &pendingTransaction{
		date:        line[:5],
		description: textutils.CollapseWhitespace(line[5:]),
	}
	return m.finalize()
}

// OnContinuationLine appends the line to the open pending description and
// re-attempts finalization against the entire accumulated text, since the
// amount and balance tokens may span what were separate physical lines.
// Lines arriving in the idle state are skipped.
func (m *Machine) OnContinuationLine(line string) (models.Transaction, bool) {
	if m.pending == nil {
		return models.Transaction{}, false
	}
	m.pending.description = textutils.CollapseWhitespace(m.pending.description + " " + line)
	return m.finalize()
}

// OnEndOfInput salvages a still-open pending transaction as a
// balance-only entry when its text carries at least one monetary token.
// This covers "Beginning Balance" style trailer lines that never acquire
// a second number. With zero tokens the pending record is discarded
// silently. The machine is idle afterwards either way.
func (m *Machine) OnEndOfInput() (models.Transaction, bool) {
	if m.pending == nil {
		return models.Transaction{}, false
	}
	pending := m.pending
	m.pending = nil

	tokens := moneytoken.Extract(pending.description)
	if len(tokens) == 0 {
		return models.Transaction{}, false
	}

	balance := tokens[len(tokens)-1]
	return models.Transaction{
		Date:        pending.date,
		Description: textutils.CleanDescription(pending.description, balance.Raw),
		Balance:     models.Amount(balance.Magnitude),
	}, true
}

// finalize emits a transaction once the accumulated description carries
// at least two monetary tokens. Statement lines consistently place the
// amount immediately before the balance as the final two numbers, no
// matter how many figures (check numbers, card digits) appear earlier, so
// the second-to-last token is the amount and the last is the balance. A
// trailing-minus amount is a debit; otherwise it is a credit. The balance
// is recorded as its unsigned magnitude.
func (m *Machine) finalize() (models.Transaction, bool) {
	tokens := moneytoken.Extract(m.pending.description)
	if len(tokens) < 2 {
		return models.Transaction{}, false
	}

	amount := tokens[len(tokens)-2]
	balance := tokens[len(tokens)-1]

	tx := models.Transaction{
		Date:        m.pending.date,
		Description: textutils.CleanDescription(m.pending.description, amount.Raw, balance.Raw),
		Balance:     models.Amount(balance.Magnitude),
	}
	if amount.Negative {
		tx.Debit = models.Amount(amount.Magnitude)
	} else {
		tx.Credit = models.Amount(amount.Magnitude)
	}

	m.pending = nil
	return tx, true
}

// SplitLines prepares raw converter text for the machine: carriage
// returns stripped, lines trimmed, blank lines dropped, order preserved.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
