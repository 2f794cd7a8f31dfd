package deckgen

import (
	"fmt"
	"os"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// LoadTopic reads and parses a topic file. The topic is validated before
// being returned; a structurally invalid file never reaches the renderers.
func LoadTopic(path string) (*Topic, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, path)
		}
		return nil, fmt.Errorf("reading topic file: %w", err)
	}
	topic, err := ParseTopic(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return topic, nil
}

// ParseTopic parses YAML topic data and validates it.
func ParseTopic(data []byte) (*Topic, error) {
	var topic Topic
	if err := yamlutil.Unmarshal(data, &topic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopicParse, err)
	}
	if err := topic.Validate(); err != nil {
		return nil, err
	}
	return &topic, nil
}
