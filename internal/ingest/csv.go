// Package ingest converts external scouting exports into player records
// the evaluation engine can run. It is deliberately tolerant: blank
// numeric cells become ungraded (nil) ratings, never zeros.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftrun/draftrun/internal/model"
)

// row is one CSV record indexed by lower-cased header name.
type row struct {
	columns map[string]int
	fields  []string
}

func (r row) str(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// grade parses a 20-80 cell. Blank and unparseable cells are ungraded.
func (r row) grade(name string) *float64 {
	s := r.str(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (r row) intval(name string) int {
	s := r.str(name)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ReadPlayers parses a scouting export CSV into player records. The first
// record must be a header row; column order is free and unknown columns
// are ignored. Rows missing an id are assigned one.
func ReadPlayers(src io.Reader) ([]model.Player, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("scouting export has no name column")
	}

	var players []model.Player
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record at line %d: %w", line, err)
		}
		players = append(players, playerFromRow(row{columns: columns, fields: fields}))
	}

	log.Debug().Int("players", len(players)).Msg("parsed scouting export")
	return players, nil
}

func playerFromRow(r row) model.Player {
	p := model.Player{
		ID:       r.str("id"),
		Name:     r.str("name"),
		Position: model.Position(strings.ToUpper(r.str("position"))),
		Age:      r.intval("age"),
		Bats:     r.str("bats"),
		Throws:   r.str("throws"),
		HeightIn: r.intval("height_in"),
		WeightLb: r.intval("weight_lb"),

		School: r.str("school"),
		Level:  r.str("level"),

		Leadership:   r.str("leadership"),
		WorkEthic:    r.str("work_ethic"),
		Intelligence: r.str("intelligence"),
		Adaptability: r.str("adaptability"),
		InjuryProne:  r.str("injury_prone"),

		Overall:   r.grade("overall"),
		Potential: r.grade("potential"),

		BattedBallType: r.str("batted_ball_type"),
		PitcherType:    r.str("pitcher_type"),
		ArmSlot:        r.str("arm_slot"),

		DemandAmount:  r.str("demand_amount"),
		Signability:   model.Signability(r.str("signability")),
		Risk:          model.Risk(r.str("risk")),
		ScoutAccuracy: r.str("scout_accuracy"),
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	p.Batting = battingFromRow(r)
	p.Pitching = pitchingFromRow(r)
	p.Defense = defenseFromRow(r)
	p.Speed = speedFromRow(r)
	return p
}

func battingFromRow(r row) *model.BattingRatings {
	b := &model.BattingRatings{
		Contact:    r.grade("contact"),
		ContactPot: r.grade("contact_pot"),
		ContactVsL: r.grade("contact_vs_l"),
		ContactVsR: r.grade("contact_vs_r"),
		Gap:        r.grade("gap"),
		GapPot:     r.grade("gap_pot"),
		Power:      r.grade("power"),
		PowerPot:   r.grade("power_pot"),
		PowerVsL:   r.grade("power_vs_l"),
		PowerVsR:   r.grade("power_vs_r"),
		Eye:        r.grade("eye"),
		EyePot:     r.grade("eye_pot"),
		AvoidK:     r.grade("avoid_k"),
		AvoidKPot:  r.grade("avoid_k_pot"),
		Babip:      r.grade("babip"),
		BabipPot:   r.grade("babip_pot"),
	}
	if *b == (model.BattingRatings{}) {
		return nil
	}
	return b
}

func pitchingFromRow(r row) *model.PitchingRatings {
	p := &model.PitchingRatings{
		Stuff:       r.grade("stuff"),
		StuffPot:    r.grade("stuff_pot"),
		StuffVsL:    r.grade("stuff_vs_l"),
		StuffVsR:    r.grade("stuff_vs_r"),
		Movement:    r.grade("movement"),
		MovementPot: r.grade("movement_pot"),
		Control:     r.grade("control"),
		ControlPot:  r.grade("control_pot"),
		ControlVsL:  r.grade("control_vs_l"),
		ControlVsR:  r.grade("control_vs_r"),
		PBabip:      r.grade("p_babip"),
		PBabipPot:   r.grade("p_babip_pot"),
		HRRate:      r.grade("hr_rate"),
		HRRatePot:   r.grade("hr_rate_pot"),
		Stamina:     r.grade("stamina"),
		GroundFly:   r.grade("ground_fly"),
	}

	// Pitch grades arrive as pitch_<name> columns.
	arsenal := make(map[string]*float64)
	for col := range r.columns {
		if !strings.HasPrefix(col, "pitch_") {
			continue
		}
		if g := r.grade(col); g != nil {
			arsenal[pitchName(col)] = g
		}
	}
	if len(arsenal) > 0 {
		p.Arsenal = arsenal
	}

	if p.Arsenal == nil && emptyPitching(p) {
		return nil
	}
	return p
}

func emptyPitching(p *model.PitchingRatings) bool {
	for _, g := range []*float64{
		p.Stuff, p.StuffPot, p.StuffVsL, p.StuffVsR,
		p.Movement, p.MovementPot,
		p.Control, p.ControlPot, p.ControlVsL, p.ControlVsR,
		p.PBabip, p.PBabipPot, p.HRRate, p.HRRatePot,
		p.Stamina, p.GroundFly,
	} {
		if g != nil {
			return false
		}
	}
	return true
}

// pitchName turns a pitch_two_seam column into "Two Seam".
func pitchName(col string) string {
	raw := strings.TrimPrefix(col, "pitch_")
	words := strings.Split(raw, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func defenseFromRow(r row) *model.DefenseRatings {
	d := &model.DefenseRatings{
		InfieldRange:  r.grade("infield_range"),
		InfieldArm:    r.grade("infield_arm"),
		InfieldError:  r.grade("infield_error"),
		TurnDP:        r.grade("turn_dp"),
		OutfieldRange: r.grade("outfield_range"),
		OutfieldArm:   r.grade("outfield_arm"),
		OutfieldError: r.grade("outfield_error"),
		CatcherFrame:  r.grade("catcher_frame"),
		CatcherArm:    r.grade("catcher_arm"),
	}
	if *d == (model.DefenseRatings{}) {
		return nil
	}
	return d
}

func speedFromRow(r row) *model.SpeedRatings {
	s := &model.SpeedRatings{
		Speed:       r.grade("speed"),
		Stealing:    r.grade("stealing"),
		Baserunning: r.grade("baserunning"),
	}
	if *s == (model.SpeedRatings{}) {
		return nil
	}
	return s
}
