package promo

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"pikalba/internal/model"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading promo-code seed files.
// A seed file is gzipped JSON lines, one PromoCode document per line.
type Loader interface {
	Load(ctx context.Context, filePath string) ([]model.PromoCode, error)
}

// fileLoader implements Loader for the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based promo loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "promo-loader").Logger(),
	}
}

// Load reads a gzipped promo seed file.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.PromoCode, error) {
	l.logger.Info().Str("file", filePath).Msg("loading promo seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open promo seed file")
		return nil, fmt.Errorf("failed to open promo seed file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	promos, err := decodeLines(ctx, gzipReader, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading promo seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("promos_loaded", len(promos)).
		Msg("promo seed file loaded")

	return promos, nil
}

// decodeLines parses one JSON PromoCode per non-empty line.
func decodeLines(ctx context.Context, r interface{ Read([]byte) (int, error) }, source string) ([]model.PromoCode, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var promos []model.PromoCode
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p model.PromoCode
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("invalid promo document at %s:%d: %w", source, lineNo, err)
		}
		promos = append(promos, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading promo seed %s: %w", source, err)
	}

	return promos, nil
}
