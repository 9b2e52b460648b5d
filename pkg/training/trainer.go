package training

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mrhapile/fish-health-diagnoser/pkg/config"
	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	ModelFile    = "fish_disease_model.json"
	MetadataFile = "model_metadata.yaml"
)

// Metadata describes a trained artifact.
type Metadata struct {
	Kind         string    `yaml:"kind"`
	FeatureNames []string  `yaml:"feature_names"`
	ClassNames   []string  `yaml:"class_names"`
	Accuracy     float64   `yaml:"accuracy"`
	Samples      int       `yaml:"samples"`
	TrainSize    int       `yaml:"train_size"`
	TestSize     int       `yaml:"test_size"`
	Seed         int64     `yaml:"seed"`
	TrainedAt    time.Time `yaml:"trained_at"`
	ModelFile    string    `yaml:"model_file"`
	Report       Report    `yaml:"report"`
}

// Result is what a training run produced.
type Result struct {
	Model    *Model
	Report   Report
	Metadata Metadata
	Dir      string
}

// Trainer generates synthetic data, fits a classifier and writes the artifact.
// The serving path never loads the artifact; it is kept for future training on
// real data.
type Trainer struct {
	cfg config.TrainingConfig
	log *zap.Logger
	out io.Writer
	now func() time.Time
}

func NewTrainer(cfg config.TrainingConfig, log *zap.Logger, out io.Writer) *Trainer {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Trainer{cfg: cfg, log: log, out: out, now: time.Now}
}

// Run performs one training run. The configuration is checked first since
// callers may override fields after loading it.
func (t *Trainer) Run() (*Result, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, err
	}

	t.log.Info("generating synthetic training data",
		zap.Int("samples", t.cfg.Samples), zap.Int64("seed", t.cfg.Seed))
	ds := GenerateSynthetic(t.cfg.Samples, t.cfg.Seed)
	t.log.Debug("class distribution", classFields(ds)...)

	train, test, err := StratifiedSplit(ds, t.cfg.TestSize, t.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("split dataset: %w", err)
	}
	t.log.Info("split dataset", zap.Int("train", len(train)), zap.Int("test", len(test)))

	model, err := Fit(train, 1)
	if err != nil {
		return nil, fmt.Errorf("fit model: %w", err)
	}

	report := Evaluate(model, test)
	t.log.Info("evaluated model", zap.Float64("accuracy", report.Accuracy))
	fmt.Fprintf(t.out, "Model Accuracy: %.3f\n\nClassification Report:\n", report.Accuracy)
	report.Render(t.out)

	if err := os.MkdirAll(t.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	modelPath := filepath.Join(t.cfg.OutputDir, ModelFile)
	if err := SaveModel(modelPath, model); err != nil {
		return nil, err
	}

	meta := Metadata{
		Kind:         model.Kind,
		FeatureNames: model.FeatureNames,
		ClassNames:   model.ClassNames,
		Accuracy:     report.Accuracy,
		Samples:      len(ds),
		TrainSize:    len(train),
		TestSize:     len(test),
		Seed:         t.cfg.Seed,
		TrainedAt:    t.now().UTC(),
		ModelFile:    ModelFile,
		Report:       report,
	}
	if err := SaveMetadata(filepath.Join(t.cfg.OutputDir, MetadataFile), meta); err != nil {
		return nil, err
	}
	t.log.Info("model saved", zap.String("path", modelPath))
	fmt.Fprintf(t.out, "\nModel saved to: %s\n", modelPath)

	return &Result{Model: model, Report: report, Metadata: meta, Dir: t.cfg.OutputDir}, nil
}

func classFields(ds Dataset) []zap.Field {
	counts := ds.ClassCounts()
	fields := make([]zap.Field, 0, len(counts))
	for i, n := range counts {
		if label, ok := types.DiseaseAt(i); ok {
			fields = append(fields, zap.Int(label, n))
		}
	}
	return fields
}

func SaveMetadata(path string, meta Metadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

func LoadMetadata(path string) (Metadata, error) {
	var meta Metadata
	data, err := os.ReadFile(path)
	if err != nil {
		return meta, fmt.Errorf("read metadata: %w", err)
	}
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("decode metadata: %w", err)
	}
	return meta, nil
}
