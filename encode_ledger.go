package goldtrack

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a chronologically sorted Ledger.
// Decoding does not re-validate positions: replay must not fail on data a
// user edited by hand; ComputeState copes with inconsistencies instead.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("format error in ledger line %q: %w", string(line), err)
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	ledger.stableSort()
	return ledger, nil
}

// EncodeLedger writes the ledger as JSONL, one transaction per line, in
// chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransaction appends a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	line, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction %s: %w", tx.ID, err)
	}
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("could not write transaction %s: %w", tx.ID, err)
	}
	return nil
}

// LoadLedger reads the ledger persisted under the "transactions" key.
// An absent record is an empty ledger.
func LoadLedger(ctx context.Context, store Store) (*Ledger, error) {
	raw, ok, err := store.Get(ctx, KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	if !ok {
		return NewLedger(), nil
	}
	return DecodeLedger(strings.NewReader(raw))
}

// SaveLedger persists the whole ledger under the "transactions" key,
// replacing the previous record.
func SaveLedger(ctx context.Context, store Store, l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}
	return store.Set(ctx, KeyTransactions, buf.String())
}
