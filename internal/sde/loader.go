// Package sde loads the static star-map data the service routes over:
// systems and gates, authoritative true security values, inter-trade-zone
// channels and NPC stations.
package sde

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"jumpbot/internal/graph"
	"jumpbot/internal/logger"
)

// Data holds all parsed static data.
type Data struct {
	Systems       map[string]*SolarSystem // canonical name -> system
	SystemNames   []string                // sorted canonical names, for autocomplete
	ITCs          map[string]*ITC         // system name -> ITC location
	StationCounts map[string]int          // system name -> NPC station count
	Universe      *graph.Universe
}

// SolarSystem is one routable system from the star list.
type SolarSystem struct {
	Name          string
	Region        string
	Constellation string
	TrueSec       float64 // 5-decimal raw security; classification derives from this
	Gates         []string
}

// ITC is an inter-trade-zone channel location.
type ITC struct {
	System  string
	Planet  string
	Moon    string
	Station string
}

// Load parses all data files under dataDir and builds the universe.
func Load(dataDir string) (*Data, error) {
	data := &Data{
		Systems:       make(map[string]*SolarSystem),
		ITCs:          make(map[string]*ITC),
		StationCounts: make(map[string]int),
		Universe:      graph.NewUniverse(),
	}

	logger.Info("SDE", "Loading star list...")
	if err := data.loadStars(dataDir); err != nil {
		return nil, err
	}
	logger.Info("SDE", "Loading true security values...")
	if err := data.loadTrueSec(dataDir); err != nil {
		return nil, err
	}
	logger.Info("SDE", "Loading ITCs...")
	if err := data.loadITCs(dataDir); err != nil {
		return nil, err
	}
	logger.Info("SDE", "Loading NPC stations...")
	if err := data.loadStations(dataDir); err != nil {
		return nil, err
	}

	data.Universe.Finalize()

	data.SystemNames = make([]string, 0, len(data.Systems))
	for name := range data.Systems {
		data.SystemNames = append(data.SystemNames, name)
	}
	sort.Strings(data.SystemNames)

	logger.Section("Star Map Statistics")
	logger.Stats("Systems", len(data.Systems))
	logger.Stats("Gates", data.Universe.GateCount())
	logger.Stats("ITCs", len(data.ITCs))
	logger.Stats("Station systems", len(data.StationCounts))
	return data, nil
}

// loadStars reads stars.csv: name, region, constellation, rounded security,
// bracketed neighbor list.
func (d *Data) loadStars(dir string) error {
	rows, err := readCSV(filepath.Join(dir, "stars.csv"))
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 5 {
			return fmt.Errorf("stars.csv row %d: %d columns, want 5", i+2, len(row))
		}
		name := row[0]
		sec, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return fmt.Errorf("stars.csv row %d (%s): security %q: %w", i+2, name, row[3], err)
		}
		gates := parseEdgeList(row[4])
		d.Systems[name] = &SolarSystem{
			Name:          name,
			Region:        row[1],
			Constellation: row[2],
			TrueSec:       sec,
			Gates:         gates,
		}
		d.Universe.SetSystem(name, row[1], row[2], sec)
		for _, gate := range gates {
			d.Universe.AddGate(name, gate)
		}
	}
	return nil
}

// loadTrueSec reads truesec.csv, whose 5-decimal values override the star
// list's pre-rounded ones. Classification must run on these, not the
// display values.
func (d *Data) loadTrueSec(dir string) error {
	rows, err := readCSV(filepath.Join(dir, "truesec.csv"))
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("truesec.csv row %d: %d columns, want 2", i+2, len(row))
		}
		name := row[0]
		if _, ok := d.Systems[name]; !ok {
			continue // truesec for systems outside the star list is harmless
		}
		sec, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return fmt.Errorf("truesec.csv row %d (%s): %q: %w", i+2, name, row[1], err)
		}
		d.Systems[name].TrueSec = sec
		d.Universe.SetTrueSec(name, sec)
	}
	return nil
}

func (d *Data) loadITCs(dir string) error {
	rows, err := readCSV(filepath.Join(dir, "itcs.csv"))
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) < 4 {
			return fmt.Errorf("itcs.csv row %d: %d columns, want 4", i+2, len(row))
		}
		d.ITCs[row[0]] = &ITC{System: row[0], Planet: row[1], Moon: row[2], Station: row[3]}
	}
	return nil
}

// loadStations reads npc_stations.json (station -> solar system ID) and
// mapSolarSystems.csv (ID -> name), counting stations per system.
func (d *Data) loadStations(dir string) error {
	raw, err := os.ReadFile(filepath.Join(dir, "npc_stations.json"))
	if err != nil {
		return fmt.Errorf("read npc_stations.json: %w", err)
	}
	var stations map[string]struct {
		SolarSystemID int64 `json:"solar_system_id"`
	}
	if err := json.Unmarshal(raw, &stations); err != nil {
		return fmt.Errorf("parse npc_stations.json: %w", err)
	}

	idToName, err := loadSystemIDs(filepath.Join(dir, "mapSolarSystems.csv"))
	if err != nil {
		return err
	}

	for station, info := range stations {
		name, ok := idToName[info.SolarSystemID]
		if !ok {
			return fmt.Errorf("station %s references unknown system ID %d", station, info.SolarSystemID)
		}
		d.StationCounts[name]++
	}
	return nil
}

// loadSystemIDs reads the column-addressed system ID map.
func loadSystemIDs(path string) (map[int64]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	idCol, nameCol := -1, -1
	for i, col := range header {
		switch col {
		case "solarSystemID":
			idCol = i
		case "solarSystemName":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("%s: missing solarSystemID/solarSystemName columns", path)
	}

	out := make(map[int64]string)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row[idCol], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: system ID %q: %w", path, row[idCol], err)
		}
		out[id] = row[nameCol]
	}
	return out, nil
}

// readCSV returns all data rows of a headered CSV file.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	return rows[1:], nil // skip header
}

// parseEdgeList parses the star list's bracketed neighbor field, e.g.
// ['Jita', 'Perimeter'].
func parseEdgeList(field string) []string {
	field = strings.TrimSpace(field)
	field = strings.TrimPrefix(field, "[")
	field = strings.TrimSuffix(field, "]")
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	gates := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.Trim(strings.TrimSpace(part), `'"`)
		if name != "" {
			gates = append(gates, name)
		}
	}
	return gates
}
