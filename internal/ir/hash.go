package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainDataset = "linkset/dataset/v1"
	DomainReport  = "linkset/report/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// DatasetHash computes the content-addressed ID of a parsed dataset.
// Comments, blank lines, and spacing do not contribute; only the header and
// row tokens do.
func DatasetHash(header []string, rows [][]string) (string, error) {
	rowList := make([]any, len(rows))
	for i, row := range rows {
		rowList[i] = stringsToAny(row)
	}
	canonical, err := MarshalCanonical(map[string]any{
		"header": stringsToAny(header),
		"rows":   rowList,
	})
	if err != nil {
		return "", fmt.Errorf("DatasetHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDataset, canonical), nil
}

// ReportHash computes the content-addressed ID of a report.
// Two runs over the same data produce the same hash.
func ReportHash(r *Report) (string, error) {
	canonical, err := MarshalCanonical(r.canonicalMap())
	if err != nil {
		return "", fmt.Errorf("ReportHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainReport, canonical), nil
}

// MustReportHash is like ReportHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustReportHash(r *Report) string {
	hash, err := ReportHash(r)
	if err != nil {
		panic(err)
	}
	return hash
}
