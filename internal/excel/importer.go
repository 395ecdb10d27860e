// Package excel bulk-imports cards into a deck from spreadsheet files.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/flashdeck/internal/database"
	"github.com/example/flashdeck/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath    string // Path to the Excel or CSV file
	FrontColumn string // Column with the card front
	BackColumn  string // Column with the card back
	NotesColumn string // Column with the optional notes
	SheetName   string // Name of the sheet to import
	SkipHeader  bool   // Skip the header row
	StartRow    int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		FrontColumn: "A",
		BackColumn:  "B",
		NotesColumn: "C",
		SheetName:   "Sheet1",
		SkipHeader:  true,
		StartRow:    2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportCards imports cards from an Excel or CSV file into the deck.
// Rows with an empty front are skipped rather than rejected.
func ImportCards(cards *database.CardRepository, deckID string, config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(cards, deckID, config)
	}
	return importFromExcel(cards, deckID, config)
}

// importFromExcel imports cards from an Excel file
func importFromExcel(cards *database.CardRepository, deckID string, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", config.SheetName, err)
	}

	frontCol, err := excelize.ColumnNameToNumber(config.FrontColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid front column: %w", err)
	}
	backCol, err := excelize.ColumnNameToNumber(config.BackColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid back column: %w", err)
	}
	notesCol, err := excelize.ColumnNameToNumber(config.NotesColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid notes column: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}

	start := config.StartRow
	if start < 1 {
		start = 1
	}
	for i := start - 1; i < len(rows); i++ {
		row := rows[i]
		result.TotalProcessed++

		front := cellValue(row, frontCol)
		back := cellValue(row, backCol)
		notes := cellValue(row, notesCol)

		if front == "" {
			result.Skipped++
			continue
		}

		if _, err := cards.AddCard(deckID, models.Card{Front: front, Back: back, Notes: notes}); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

// importFromCSV imports cards from a CSV file. Columns follow the same
// letter configuration as the Excel path.
func importFromCSV(cards *database.CardRepository, deckID string, config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	frontCol, err := excelize.ColumnNameToNumber(config.FrontColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid front column: %w", err)
	}
	backCol, err := excelize.ColumnNameToNumber(config.BackColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid back column: %w", err)
	}
	notesCol, err := excelize.ColumnNameToNumber(config.NotesColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid notes column: %w", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}

	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		if line == 1 && config.SkipHeader {
			continue
		}
		result.TotalProcessed++

		front := cellValue(row, frontCol)
		back := cellValue(row, backCol)
		notes := cellValue(row, notesCol)

		if front == "" {
			result.Skipped++
			continue
		}

		if _, err := cards.AddCard(deckID, models.Card{Front: front, Back: back, Notes: notes}); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

// cellValue returns the trimmed value of the 1-based column, or "" when
// the row is too short.
func cellValue(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}
