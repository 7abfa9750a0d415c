package model

// Position identifies where a prospect projects to play.
type Position string

const (
	PositionC  Position = "C"
	Position1B Position = "1B"
	Position2B Position = "2B"
	Position3B Position = "3B"
	PositionSS Position = "SS"
	PositionLF Position = "LF"
	PositionCF Position = "CF"
	PositionRF Position = "RF"
	PositionDH Position = "DH"
	PositionSP Position = "SP"
	PositionRP Position = "RP"
	PositionCL Position = "CL"
)

// IsPitcher reports whether the position is evaluated on pitching ratings.
func (p Position) IsPitcher() bool {
	return p == PositionSP || p == PositionRP || p == PositionCL
}

// Risk is the scout's bust-risk assessment.
type Risk string

const (
	RiskVeryLow Risk = "Very Low"
	RiskLow     Risk = "Low"
	RiskNormal  Risk = "Normal"
	RiskHigh    Risk = "High"
	RiskExtreme Risk = "Extreme"
)

// Signability is the scout's read on how hard the player is to sign.
type Signability string

const (
	SignVeryEasy      Signability = "Very Easy"
	SignEasy          Signability = "Easy"
	SignNormal        Signability = "Normal"
	SignHard          Signability = "Hard"
	SignVeryHard      Signability = "Very Hard"
	SignExtremelyHard Signability = "Extremely Hard"
)

// Categorical personality and makeup grades as they appear in scouting
// exports. Unknown values are treated as their neutral tier.
const (
	GradeLow      = "Low"
	GradeNormal   = "Normal"
	GradeHigh     = "High"
	GradeVeryHigh = "Very High"
)

// Injury proneness grades.
const (
	InjuryDurable  = "Durable"
	InjuryNormal   = "Normal"
	InjuryHigh     = "High"
	InjuryVeryHigh = "Very High"
)

// Scout accuracy grades (confidence in the scouting report).
const (
	ScoutEasy     = "Easy"
	ScoutNormal   = "Normal"
	ScoutHard     = "Hard"
	ScoutVeryHard = "Very Hard"
)

// Competition levels a prospect was scouted at.
const (
	LevelHighSchool    = "High School"
	LevelCollege       = "College"
	LevelJuco          = "Juco"
	LevelInternational = "International"
)

// Arm slots for pitchers.
const (
	ArmSlotOverhand    = "Overhand"
	ArmSlotThreeQuarts = "Three-Quarters"
	ArmSlotSidearm     = "Sidearm"
	ArmSlotSubmarine   = "Submarine"
)

// BattingRatings carries a batter's scouting grades on the 20-80 scale.
// Nil means the scout did not grade the category.
type BattingRatings struct {
	Contact    *float64 `json:"contact,omitempty"`
	ContactPot *float64 `json:"contact_pot,omitempty"`
	ContactVsL *float64 `json:"contact_vs_l,omitempty"`
	ContactVsR *float64 `json:"contact_vs_r,omitempty"`
	Gap        *float64 `json:"gap,omitempty"`
	GapPot     *float64 `json:"gap_pot,omitempty"`
	Power      *float64 `json:"power,omitempty"`
	PowerPot   *float64 `json:"power_pot,omitempty"`
	PowerVsL   *float64 `json:"power_vs_l,omitempty"`
	PowerVsR   *float64 `json:"power_vs_r,omitempty"`
	Eye        *float64 `json:"eye,omitempty"`
	EyePot     *float64 `json:"eye_pot,omitempty"`
	AvoidK     *float64 `json:"avoid_k,omitempty"`
	AvoidKPot  *float64 `json:"avoid_k_pot,omitempty"`
	Babip      *float64 `json:"babip,omitempty"`
	BabipPot   *float64 `json:"babip_pot,omitempty"`
}

// PitchingRatings carries a pitcher's scouting grades on the 20-80 scale.
type PitchingRatings struct {
	Stuff       *float64 `json:"stuff,omitempty"`
	StuffPot    *float64 `json:"stuff_pot,omitempty"`
	StuffVsL    *float64 `json:"stuff_vs_l,omitempty"`
	StuffVsR    *float64 `json:"stuff_vs_r,omitempty"`
	Movement    *float64 `json:"movement,omitempty"`
	MovementPot *float64 `json:"movement_pot,omitempty"`
	Control     *float64 `json:"control,omitempty"`
	ControlPot  *float64 `json:"control_pot,omitempty"`
	ControlVsL  *float64 `json:"control_vs_l,omitempty"`
	ControlVsR  *float64 `json:"control_vs_r,omitempty"`
	PBabip      *float64 `json:"p_babip,omitempty"`
	PBabipPot   *float64 `json:"p_babip_pot,omitempty"`
	HRRate      *float64 `json:"hr_rate,omitempty"`
	HRRatePot   *float64 `json:"hr_rate_pot,omitempty"`
	Stamina     *float64 `json:"stamina,omitempty"`
	GroundFly   *float64 `json:"ground_fly,omitempty"`
	// Arsenal maps pitch name (Fastball, Slider, ...) to its 20-80 grade.
	Arsenal map[string]*float64 `json:"arsenal,omitempty"`
}

// DefenseRatings carries fielding grades. Infield fields apply to infield
// positions, catcher fields to catchers, outfield fields to outfielders.
type DefenseRatings struct {
	InfieldRange  *float64 `json:"infield_range,omitempty"`
	InfieldArm    *float64 `json:"infield_arm,omitempty"`
	InfieldError  *float64 `json:"infield_error,omitempty"`
	TurnDP        *float64 `json:"turn_dp,omitempty"`
	OutfieldRange *float64 `json:"outfield_range,omitempty"`
	OutfieldArm   *float64 `json:"outfield_arm,omitempty"`
	OutfieldError *float64 `json:"outfield_error,omitempty"`
	CatcherFrame  *float64 `json:"catcher_frame,omitempty"`
	CatcherArm    *float64 `json:"catcher_arm,omitempty"`
}

// SpeedRatings carries running grades.
type SpeedRatings struct {
	Speed       *float64 `json:"speed,omitempty"`
	Stealing    *float64 `json:"stealing,omitempty"`
	Baserunning *float64 `json:"baserunning,omitempty"`
}

// Player is one draft prospect as produced by ingestion. All rating values
// are 20-80 scouting grades; nil means ungraded.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Age      int      `json:"age"`
	Bats     string   `json:"bats,omitempty"`
	Throws   string   `json:"throws,omitempty"`
	HeightIn int      `json:"height_in,omitempty"`
	WeightLb int      `json:"weight_lb,omitempty"`

	School string `json:"school,omitempty"`
	Level  string `json:"level,omitempty"`

	Leadership   string `json:"leadership,omitempty"`
	WorkEthic    string `json:"work_ethic,omitempty"`
	Intelligence string `json:"intelligence,omitempty"`
	Adaptability string `json:"adaptability,omitempty"`
	InjuryProne  string `json:"injury_prone,omitempty"`

	// Headline scouting grades for the player as a whole.
	Overall   *float64 `json:"overall,omitempty"`
	Potential *float64 `json:"potential,omitempty"`

	Batting  *BattingRatings  `json:"batting,omitempty"`
	Pitching *PitchingRatings `json:"pitching,omitempty"`
	Defense  *DefenseRatings  `json:"defense,omitempty"`
	Speed    *SpeedRatings    `json:"speed,omitempty"`

	// BattedBallType for batters (Flyball, Groundball, Line Drive, Normal);
	// PitcherType for pitchers (Groundball, Flyball, Normal).
	BattedBallType string `json:"batted_ball_type,omitempty"`
	PitcherType    string `json:"pitcher_type,omitempty"`
	ArmSlot        string `json:"arm_slot,omitempty"`

	// DemandAmount is the raw signing-bonus demand: "Slot" or a dollar
	// string such as "$3,500,000".
	DemandAmount  string      `json:"demand_amount,omitempty"`
	Signability   Signability `json:"signability,omitempty"`
	Risk          Risk        `json:"risk,omitempty"`
	ScoutAccuracy string      `json:"scout_accuracy,omitempty"`

	Drafted   bool   `json:"drafted"`
	DraftedBy string `json:"drafted_by,omitempty"`
}

// Float returns a pointer to v. Convenience for building rating literals.
func Float(v float64) *float64 { return &v }
