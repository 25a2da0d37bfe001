package common

import (
	"fmt"

	"github.com/dtnitsch/wordfreq/pkg/db"
)

// RecordRun stores a counted document in the history database at dbPath and
// returns the new run ID.
func RecordRun(dbPath string, doc *Document, reportPath string) (string, error) {
	database, err := db.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return RecordRunTo(database, doc, reportPath)
}

// RecordRunTo stores a counted document in an already open database.
func RecordRunTo(database *db.DB, doc *Document, reportPath string) (string, error) {
	runID, err := database.RecordRun(db.Run{
		Document:    doc.Name,
		ReportPath:  reportPath,
		Language:    doc.Language,
		TotalTokens: doc.Table.TotalTokens(),
		Vocabulary:  doc.Table.Len(),
	}, doc.Table.Entries())
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return runID, nil
}
