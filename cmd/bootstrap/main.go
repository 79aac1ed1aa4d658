// Command bootstrap writes the default lexicon and stopword configuration
// files so the curated lists can be edited per dataset.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/polarity/pkg/polarity/config"
	"github.com/cognicore/polarity/pkg/polarity/lexicon"
	"github.com/cognicore/polarity/pkg/polarity/normalize"
)

func main() {
	var (
		dir   = flag.String("dir", "configs", "Directory to write config files into")
		force = flag.Bool("force", false, "Overwrite existing files")
	)
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatalf("create config directory: %v", err)
	}

	lex := config.Lexicons{
		Positive:  lexicon.DefaultPositive(),
		Negative:  lexicon.DefaultNegative(),
		Noise:     lexicon.DefaultNoise(),
		Ambiguous: lexicon.DefaultAmbiguous(),
	}
	if err := writeYAML(filepath.Join(*dir, "lexicons.yaml"), lex, *force); err != nil {
		log.Fatalf("write lexicons.yaml: %v", err)
	}

	sw := config.Stopwords{Terms: normalize.DefaultStopwords()}
	if err := writeYAML(filepath.Join(*dir, "stopwords.yaml"), sw, *force); err != nil {
		log.Fatalf("write stopwords.yaml: %v", err)
	}

	log.Printf("✓ Wrote default configs to %s", *dir)
}

func writeYAML(path string, v interface{}, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
