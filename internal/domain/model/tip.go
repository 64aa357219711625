package model

// Tip is one nutrition tip from the guide catalog.
type Tip struct {
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
	Category string `yaml:"category"`
}
