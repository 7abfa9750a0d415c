package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftrun/draftrun/internal/model"
)

const sampleExport = `id,name,position,age,level,overall,potential,contact,contact_pot,power,power_pot,eye,stuff,stuff_pot,control,stamina,pitch_fastball,pitch_slider,speed,infield_range,infield_arm,risk,signability,demand_amount,injury_prone,work_ethic
b1,Reese Calder,SS,18,High School,45,70,50,65,40,60,55,,,,,,,60,55,60,Normal,Hard,"$2,400,000",Normal,High
,Drew Okafor,SP,21,College,50,65,,,,,,60,70,50,55,65,55,,,,High,Normal,Slot,High,Normal
`

func TestReadPlayers(t *testing.T) {
	players, err := ReadPlayers(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, players, 2)

	ss := players[0]
	assert.Equal(t, "b1", ss.ID)
	assert.Equal(t, "Reese Calder", ss.Name)
	assert.Equal(t, model.PositionSS, ss.Position)
	assert.Equal(t, 18, ss.Age)
	assert.Equal(t, model.LevelHighSchool, ss.Level)
	require.NotNil(t, ss.Overall)
	assert.Equal(t, 45.0, *ss.Overall)
	require.NotNil(t, ss.Batting)
	require.NotNil(t, ss.Batting.ContactPot)
	assert.Equal(t, 65.0, *ss.Batting.ContactPot)
	assert.Nil(t, ss.Batting.Gap, "blank cells stay ungraded")
	assert.Nil(t, ss.Pitching, "no pitching grades for a position player")
	require.NotNil(t, ss.Defense)
	assert.Equal(t, 55.0, *ss.Defense.InfieldRange)
	assert.Equal(t, model.RiskNormal, ss.Risk)
	assert.Equal(t, model.SignHard, ss.Signability)
	assert.Equal(t, "$2,400,000", ss.DemandAmount)

	sp := players[1]
	assert.NotEmpty(t, sp.ID, "missing ids are assigned")
	assert.Equal(t, model.PositionSP, sp.Position)
	assert.Nil(t, sp.Batting)
	require.NotNil(t, sp.Pitching)
	assert.Equal(t, 70.0, *sp.Pitching.StuffPot)
	require.Contains(t, sp.Pitching.Arsenal, "Fastball")
	assert.Equal(t, 65.0, *sp.Pitching.Arsenal["Fastball"])
	assert.Contains(t, sp.Pitching.Arsenal, "Slider")
	assert.Equal(t, "Slot", sp.DemandAmount)
}

func TestReadPlayers_HeaderErrors(t *testing.T) {
	_, err := ReadPlayers(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadPlayers(strings.NewReader("id,position\n1,SS\n"))
	assert.Error(t, err, "a name column is required")
}

func TestPitchName(t *testing.T) {
	assert.Equal(t, "Fastball", pitchName("pitch_fastball"))
	assert.Equal(t, "Two Seam", pitchName("pitch_two_seam"))
}
