package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/repos"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type IngestionService interface {
	IngestBulk(ctx context.Context, payload types.BulkDraws) *types.BulkResult
}

type ingestionService struct {
	log      *logger.Logger
	drawRepo repos.DrawRepo
}

func NewIngestionService(baseLog *logger.Logger, drawRepo repos.DrawRepo) IngestionService {
	serviceLog := baseLog.With("service", "IngestionService")
	return &ingestionService{log: serviceLog, drawRepo: drawRepo}
}

// IngestBulk parses every format present in the payload, in fixed order
// csv, json, text. Each successfully parsed draw is committed individually
// before parsing continues, and a failed record never aborts the batch: it
// becomes an error descriptor instead. Free-text and CSV parsing consume
// only the expected leading tokens per field and silently ignore extras.
func (is *ingestionService) IngestBulk(ctx context.Context, payload types.BulkDraws) *types.BulkResult {
	batchLog := is.log.With("batch_id", uuid.NewString())

	result := &types.BulkResult{
		Inserted: []string{},
		Errors:   []types.IngestError{},
	}

	if payload.CSV != "" {
		is.ingestCSV(ctx, payload.CSV, result)
	}
	if len(payload.JSON) > 0 {
		is.ingestJSON(ctx, payload.JSON, result)
	}
	if payload.Text != "" {
		is.ingestText(ctx, payload.Text, result)
	}

	batchLog.Info("Bulk ingestion finished",
		"inserted", len(result.Inserted),
		"errors", len(result.Errors),
	)
	return result
}

func (is *ingestionService) ingestCSV(ctx context.Context, csvText string, result *types.BulkResult) {
	for i, line := range strings.Split(csvText, "\n") {
		row := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatCSV, Index: row, Reason: err.Error(),
			})
			continue
		}

		first := strings.ToLower(strings.TrimSpace(record[0]))
		if first == "date" || first == "data" {
			// header row, not data and not an error
			continue
		}
		if len(record) < 8 {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatCSV, Index: row,
				Reason: fmt.Sprintf("expected 8 columns (date, 5 main, 2 euro), got %d", len(record)),
			})
			continue
		}

		draw := types.Draw{Date: strings.TrimSpace(record[0])}
		if draw.Main, err = parseNumberCells(record[1:6]); err == nil {
			draw.Euro, err = parseNumberCells(record[6:8])
		}
		if err == nil {
			err = draw.Validate()
		}
		if err != nil {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatCSV, Index: row, Reason: err.Error(),
			})
			continue
		}

		is.insertParsed(ctx, draw, types.FormatCSV, row, result)
	}
}

func (is *ingestionService) ingestJSON(ctx context.Context, items []json.RawMessage, result *types.BulkResult) {
	for i, raw := range items {
		var draw types.Draw
		err := json.Unmarshal(raw, &draw)
		if err != nil {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatJSON, Index: i,
				Reason: fmt.Sprintf("not a draw object: %v", err),
			})
			continue
		}
		if err = draw.Validate(); err != nil {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatJSON, Index: i, Reason: err.Error(),
			})
			continue
		}

		is.insertParsed(ctx, draw, types.FormatJSON, i, result)
	}
}

func (is *ingestionService) ingestText(ctx context.Context, text string, result *types.BulkResult) {
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) < 3 {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatText, Index: lineNo,
				Reason: `expected "date; m1 m2 m3 m4 m5; e1 e2"`,
			})
			continue
		}

		draw := types.Draw{Date: strings.TrimSpace(parts[0])}
		var err error
		if draw.Main, err = parseNumberTokens(parts[1], 5); err == nil {
			draw.Euro, err = parseNumberTokens(parts[2], 2)
		}
		if err == nil {
			err = draw.Validate()
		}
		if err != nil {
			result.Errors = append(result.Errors, types.IngestError{
				Format: types.FormatText, Index: lineNo, Reason: err.Error(),
			})
			continue
		}

		is.insertParsed(ctx, draw, types.FormatText, lineNo, result)
	}
}

// insertParsed commits one parsed draw. A store failure is captured as an
// error descriptor like any parse failure, keeping earlier inserts intact.
func (is *ingestionService) insertParsed(ctx context.Context, draw types.Draw, format string, index int, result *types.BulkResult) {
	stored := &types.StoredDraw{Draw: draw}
	if err := is.drawRepo.Create(ctx, stored); err != nil {
		is.log.Error("Bulk insert failed", "error", err, "format", format, "index", index)
		result.Errors = append(result.Errors, types.IngestError{
			Format: format, Index: index, Reason: err.Error(),
		})
		return
	}
	result.Inserted = append(result.Inserted, stored.ID.Hex())
}

func parseNumberCells(cells []string) ([]int, error) {
	nums := make([]int, 0, len(cells))
	for _, cell := range cells {
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", cell)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// parseNumberTokens consumes at most max whitespace-separated tokens from s;
// any tokens beyond max are ignored.
func parseNumberTokens(s string, max int) ([]int, error) {
	tokens := strings.Fields(s)
	if len(tokens) > max {
		tokens = tokens[:max]
	}
	return parseNumberCells(tokens)
}
