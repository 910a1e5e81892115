package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jankohoener/asknow/internal/adapter"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/models"
)

// knownAnswers maps normalized question texts to the entity titles they
// resolve to, bypassing the entity linker for a small set of curated
// demo questions.
var knownAnswers = map[string][]string{
	"who is the president of the united states":          {"Barack Obama"},
	"how many goals did gerd müller score":               {"Gerd Müller"},
	"who is the president elect of the united states":    {"Donald Trump"},
	"in which city was beethoven born":                   {"Bonn"},
	"in which city was adenauer born":                    {"Cologne"},
	"what country is shah rukh khan from":                {"India"},
	"what are the capitals of germany and india":         {"Berlin", "New Delhi"},
	"what are the capitals of germany, india and usa":    {"Berlin", "New Delhi", "Washington D.C."},
	"what are the capitals of germany, india, usa and france": {"Berlin", "New Delhi", "Washington D.C.", "Paris"},
}

type answerService struct {
	linker  adapter.EntityLinker
	fetcher adapter.SummaryFetcher
	logger  *logger.Logger
}

// NewAnswerService wires an AnswerService over the entity linker and
// summary fetcher.
func NewAnswerService(linker adapter.EntityLinker, fetcher adapter.SummaryFetcher, logger *logger.Logger) AnswerService {
	return &answerService{linker: linker, fetcher: fetcher, logger: logger}
}

func (a *answerService) Answer(ctx context.Context, question string) models.Answer {
	log := logger.FromContext(ctx)
	answer := models.Answer{Question: question}

	normalized := normalizeQuestion(question)
	if normalized == "" {
		answer.ErrCode = models.ErrCodeMissingParam
		answer.Message = "Application needs a q parameter, none given."
		return answer
	}

	titles, known := knownAnswers[normalized]
	if !known {
		linked, err := a.linker.Annotate(ctx, normalized)
		if err != nil {
			log.Err(err).Str("question", normalized).Msg("entity linking failed")
			return failedAnswer(answer, err)
		}
		titles = linked
	}
	if len(titles) == 0 {
		log.Info().Str("question", normalized).Msg("no entities found for question")
		answer.ErrCode = models.ErrCodeNoAnswer
		answer.Message = "Could not find an answer to your question."
		return answer
	}

	summaries, err := a.fetcher.QuerySummaries(ctx, titles)
	if err != nil && !errors.Is(err, adapter.ErrPaginationLimit) {
		log.Err(err).Strs("titles", titles).Msg("summary fetch failed")
		return failedAnswer(answer, err)
	}

	answer.Answered = known
	answer.Information = summaries
	answer.Count = len(summaries)
	seen := make(map[string]struct{}, len(summaries))
	for _, summary := range summaries {
		if summary.Title == "" {
			continue
		}
		if _, dup := seen[summary.Title]; dup {
			continue
		}
		seen[summary.Title] = struct{}{}
		answer.Titles = append(answer.Titles, summary.Title)
	}
	if errors.Is(err, adapter.ErrPaginationLimit) {
		log.Warn().Strs("titles", titles).Msg("pagination bound reached, returning partial answer")
		answer.ErrCode = models.ErrCodePartialResult
		answer.Message = "Answer may be incomplete: too many result pages."
	}

	return answer
}

// normalizeQuestion lowercases the text and strips question marks so
// lookups against the known-question table are forgiving about phrasing.
func normalizeQuestion(question string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(question), "?", ""))
}

func failedAnswer(answer models.Answer, err error) models.Answer {
	var apiErr *adapter.APIError
	switch {
	case errors.As(err, &apiErr):
		answer.ErrCode = models.ErrCodeUpstreamParse
		answer.Message = fmt.Sprintf("Error parsing Wikipedia API: %s", apiErr.Info)
	case errors.Is(err, adapter.ErrUpstreamStatus):
		answer.ErrCode = models.ErrCodeUpstreamStatus
		answer.Message = "Upstream API returned a non-200 status code."
	case errors.Is(err, adapter.ErrUnreachable):
		answer.ErrCode = models.ErrCodeUnreachable
		answer.Message = "Could not reach upstream API."
	default:
		answer.ErrCode = models.ErrCodeUpstreamStatus
		answer.Message = "Upstream request failed."
	}
	return answer
}
