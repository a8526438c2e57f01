package match

// Thresholds are the three independently tunable floors a file must clear to
// become a Candidate.
type Thresholds struct {
	MinCombined float64
	MinArtist   float64
	MinTitle    float64
}

// Stage pairs a threshold tuple with a name for logging and reporting.
type Stage struct {
	Name       string
	Thresholds Thresholds
}

// The automatic resolver escalates through these fixed stages in order.
var (
	StageStrict = Stage{Name: "strict", Thresholds: Thresholds{MinCombined: 0.75, MinArtist: 0.7, MinTitle: 0.7}}
	StageMedium = Stage{Name: "medium", Thresholds: Thresholds{MinCombined: 0.65, MinArtist: 0.6, MinTitle: 0.6}}
	StageLoose  = Stage{Name: "loose", Thresholds: Thresholds{MinCombined: 0.5, MinArtist: 0.4, MinTitle: 0.5}}
)

// InteractiveThresholds are looser than any automatic stage. Recall matters
// more than precision here because a human reviews the shortlist.
var InteractiveThresholds = Thresholds{MinCombined: 0.3, MinArtist: 0.2, MinTitle: 0.3}

// Stages returns the automatic escalation sequence, strict to loose.
func Stages() []Stage {
	return []Stage{StageStrict, StageMedium, StageLoose}
}

const (
	// The artist folder name is a more reliable artist signal than whatever
	// was parsed out of the filename, hence the uneven weights.
	folderArtistWeight = 0.6
	fileArtistWeight   = 0.2
	titleWeight        = 0.6
	weightSum          = folderArtistWeight + fileArtistWeight + titleWeight

	// flacBonus nudges ranking toward lossless files. It is applied after
	// threshold filtering and never affects acceptance.
	flacBonus = 0.05

	// ShortlistSize caps how many candidates the disambiguator presents.
	ShortlistSize = 10
)
