package question

// Canonical difficulty labels used by the built-in catalog. Difficulty is
// an opaque label: nothing orders or weights it.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// File defines the question file schema loaded from JSON or YAML.
type File struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is an immutable multiple-choice question. Option positions are
// stable and form the answer index space; CorrectIndex addresses into
// Options.
type Question struct {
	Text         string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index"`
	Category     string   `json:"category" yaml:"category"`
	Difficulty   string   `json:"difficulty" yaml:"difficulty"`
}
