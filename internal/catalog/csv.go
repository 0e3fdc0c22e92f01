package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Picorims/game-hub/internal/model"
)

// Column positions of the sales CSV:
// Rank,Name,Platform,Year,Genre,Publisher,NA_Sales,EU_Sales,JP_Sales,Other_Sales,Global_Sales
const (
	colName        = 1
	colPlatform    = 2
	colYear        = 3
	colGenre       = 4
	colPublisher   = 5
	colGlobalSales = 10
	columnCount    = 11
)

// Rows below these thresholds are left out of the catalog
const (
	MinGlobalSales = 0.5
	MinYear        = 2010
)

// LoadCSVFile reads the sales CSV at path
func LoadCSVFile(path string) ([]model.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCSV(f)
}

// LoadCSV parses the sales CSV. The first record is the header and is skipped.
// Rows sharing a name are versions of the same game; one version per platform.
// An unparsable year counts as 0 and the row is then filtered out.
func LoadCSV(r io.Reader) ([]model.Game, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = columnCount

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, model.ErrCatalogEmpty
		}
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	var games []model.Game
	index := make(map[model.GameName]int)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[colYear]))
		if err != nil {
			year = 0
		}

		sales, err := strconv.ParseFloat(strings.TrimSpace(record[colGlobalSales]), 64)
		if err != nil {
			line, _ := reader.FieldPos(colGlobalSales)
			return nil, fmt.Errorf("line %d: invalid global sales %q: %w", line, record[colGlobalSales], err)
		}

		if sales <= MinGlobalSales || year < MinYear {
			continue
		}

		name := model.GameName(record[colName])
		version := model.GameVersion{
			Game:        name,
			Platform:    model.PlatformName(record[colPlatform]),
			Year:        year,
			Publisher:   record[colPublisher],
			GlobalSales: sales,
		}

		i, ok := index[name]
		if !ok {
			index[name] = len(games)
			games = append(games, model.Game{Name: name, Genre: record[colGenre]})
			i = len(games) - 1
		}
		if games[i].SupportsPlatform(version.Platform) {
			continue
		}
		games[i].Versions = append(games[i].Versions, version)
	}

	return games, nil
}
