package excel

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/frasebot/internal/database"
	"github.com/example/frasebot/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath     string // Path to the Excel, CSV or JSON file
	SourceColumn string // Column with the source sentence
	TargetColumn string // Column with the expected translation
	LevelColumn  string // Column with the CEFR level
	SheetName    string // Name of the sheet to import
	StartRow     int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SourceColumn: "A",
		TargetColumn: "B",
		LevelColumn:  "C",
		SheetName:    "Sheet1",
		StartRow:     2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportPhrases loads phrases into the catalog from an Excel, CSV or JSON
// file. JSON files use the original dataset shape: an array of objects with
// linha/esp/ptbr and an optional nivel. Phrase ids come from the file when
// present and from line position otherwise; re-importing upserts by id.
func ImportPhrases(repo *database.PhraseRepository, config ImportConfig) (*ImportResult, error) {
	switch strings.ToLower(filepath.Ext(config.FilePath)) {
	case ".json":
		return importFromJSON(repo, config)
	case ".csv":
		return importFromCSV(repo, config)
	default:
		return importFromExcel(repo, config)
	}
}

// importFromJSON imports phrases from a JSON dataset file
func importFromJSON(repo *database.PhraseRepository, config ImportConfig) (*ImportResult, error) {
	data, err := os.ReadFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %v", err)
	}

	var phrases []models.Phrase
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, phrase := range phrases {
		result.TotalProcessed++
		if phrase.ID == 0 {
			phrase.ID = i + 1
		}
		storePhrase(repo, phrase, result)
	}
	return result, nil
}

// importFromCSV imports phrases from a CSV file with source, target and an
// optional level column
func importFromCSV(repo *database.PhraseRepository, config ImportConfig) (*ImportResult, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row+1, err))
			continue
		}
		row++
		if row < config.StartRow {
			continue
		}

		result.TotalProcessed++
		phrase := models.Phrase{ID: row - config.StartRow + 1}
		if len(record) > 0 {
			phrase.SourceText = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			phrase.TargetText = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			phrase.Level = strings.ToUpper(strings.TrimSpace(record[2]))
		}
		storePhrase(repo, phrase, result)
	}
	return result, nil
}

// importFromExcel imports phrases from an Excel file
func importFromExcel(repo *database.PhraseRepository, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", config.SheetName, err)
	}

	sourceIdx, err := columnIndex(config.SourceColumn)
	if err != nil {
		return nil, err
	}
	targetIdx, err := columnIndex(config.TargetColumn)
	if err != nil {
		return nil, err
	}
	levelIdx, err := columnIndex(config.LevelColumn)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i+1 < config.StartRow {
			continue
		}
		result.TotalProcessed++

		phrase := models.Phrase{ID: i + 2 - config.StartRow}
		if sourceIdx < len(row) {
			phrase.SourceText = strings.TrimSpace(row[sourceIdx])
		}
		if targetIdx < len(row) {
			phrase.TargetText = strings.TrimSpace(row[targetIdx])
		}
		if levelIdx < len(row) {
			phrase.Level = strings.ToUpper(strings.TrimSpace(row[levelIdx]))
		}
		storePhrase(repo, phrase, result)
	}
	return result, nil
}

// storePhrase validates and upserts one phrase, updating the result counters
func storePhrase(repo *database.PhraseRepository, phrase models.Phrase, result *ImportResult) {
	if phrase.SourceText == "" || phrase.TargetText == "" {
		result.Skipped++
		return
	}
	if err := repo.Upsert(&phrase); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("phrase %d: %v", phrase.ID, err))
		return
	}
	result.Imported++
}

// columnIndex converts an Excel column name to a zero-based index
func columnIndex(name string) (int, error) {
	n, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %v", name, err)
	}
	return n - 1, nil
}
