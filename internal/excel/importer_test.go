package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/frasebot/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testRepo(t *testing.T) *database.PhraseRepository {
	t.Helper()
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_PATH", ":memory:")
	db, err := database.Connect()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewPhraseRepository(db)
}

func TestImportFromJSON(t *testing.T) {
	repo := testRepo(t)
	path := filepath.Join(t.TempDir(), "frases_es.json")
	dataset := `[
		{"linha": 10, "esp": "Hola", "ptbr": "Olá", "nivel": "A1"},
		{"esp": "Estoy cansado", "ptbr": "Estou cansado"},
		{"esp": "", "ptbr": "vazio"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0644))

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	result, err := ImportPhrases(repo, cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped, "phrases without both texts are skipped")

	phrases, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, 2, phrases[0].ID, "missing ids come from line position")
	assert.Equal(t, 10, phrases[1].ID, "explicit ids are preserved")
	assert.Equal(t, "A1", phrases[1].Level)
}

func TestImportFromCSV(t *testing.T) {
	repo := testRepo(t)
	path := filepath.Join(t.TempDir(), "frases.csv")
	csv := "source,target,level\nHola,Olá,a1\nAdiós,Adeus,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	result, err := ImportPhrases(repo, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)

	phrases, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, "Hola", phrases[0].SourceText)
	assert.Equal(t, "A1", phrases[0].Level, "levels are uppercased")
	assert.Empty(t, phrases[1].Level)
}

func TestImportFromExcel(t *testing.T) {
	repo := testRepo(t)
	path := filepath.Join(t.TempDir(), "frases.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "source"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "target"))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "level"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "¿Qué hora es?"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "Que horas são?"))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", "A2"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "Hasta luego"))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", "Até logo"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	result, err := ImportPhrases(repo, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)

	phrases, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, 1, phrases[0].ID)
	assert.Equal(t, "¿Qué hora es?", phrases[0].SourceText)
	assert.Equal(t, "A2", phrases[0].Level)
	assert.Equal(t, 2, phrases[1].ID)
}

func TestReimportUpserts(t *testing.T) {
	repo := testRepo(t)
	path := filepath.Join(t.TempDir(), "frases_es.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"linha":1,"esp":"Hola","ptbr":"Olá"}]`), 0644))

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	_, err := ImportPhrases(repo, cfg)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"linha":1,"esp":"Hola","ptbr":"Oi","nivel":"A1"}]`), 0644))
	_, err = ImportPhrases(repo, cfg)
	require.NoError(t, err)

	phrases, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, phrases, 1)
	assert.Equal(t, "Oi", phrases[0].TargetText)
}
