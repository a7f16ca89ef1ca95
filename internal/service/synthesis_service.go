package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"surveyinsights/internal/cache"
	"surveyinsights/internal/insight"
	"surveyinsights/internal/model"
	"surveyinsights/internal/pkg/logger"
)

// SynthesisService runs the three analyzers over a survey result and
// memoizes reports by fingerprint: in process first, then in Redis.
type SynthesisService struct {
	engine *insight.Engine
	memo   *lru.Cache[string, *model.InsightReport]
	cache  cache.InsightCache
	logger *zap.Logger
}

// NewSynthesisService creates the service. insightCache may be nil and a
// memoSize of 0 disables the in-process memo.
func NewSynthesisService(engine *insight.Engine, insightCache cache.InsightCache, memoSize int, log *zap.Logger) (*SynthesisService, error) {
	if engine == nil {
		engine = insight.NewEngine()
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &SynthesisService{
		engine: engine,
		cache:  insightCache,
		logger: log,
	}
	if memoSize > 0 {
		memo, err := lru.New[string, *model.InsightReport](memoSize)
		if err != nil {
			return nil, fmt.Errorf("create memo: %w", err)
		}
		s.memo = memo
	}
	return s, nil
}

// Synthesize returns the roadmap, jobs and campaign reports for a survey
// result. The returned report may be shared with other callers and must not
// be modified.
func (s *SynthesisService) Synthesize(ctx context.Context, result *model.SurveyResult) (*model.InsightReport, error) {
	if err := result.Validate(); err != nil {
		return nil, err
	}
	ctx = s.scope(ctx, "synthesize")
	start := time.Now()

	fp, err := model.Fingerprint(result)
	if err != nil {
		// Unhashable input (NaN confidences, ...) is still analyzable.
		ctxzap.Warn(ctx, "fingerprint failed, skipping memo", zap.Error(err))
		return s.compute(ctx, result, "")
	}
	fp = memoKey(s.engine, fp)
	ctx = logger.AddFields(ctx, zap.String("fingerprint", fp))

	if report := s.lookup(ctx, fp); report != nil {
		ctxzap.Debug(ctx, "report served from memo", zap.Duration("elapsed", time.Since(start)))
		return report, nil
	}

	report, err := s.compute(ctx, result, fp)
	if err != nil {
		return nil, err
	}
	s.store(ctx, report)

	ctxzap.Info(ctx, "report synthesized",
		zap.Int("options", len(result.Options)),
		zap.Int("responses", len(result.AllResponses())),
		zap.Int("phases", len(report.Roadmap.Phases)),
		zap.Int("jobs", len(report.Jobs.Jobs)),
		zap.String("primary_platform", report.Campaign.PrimaryPlatform),
		zap.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}

// Roadmap runs only the roadmap calculator
func (s *SynthesisService) Roadmap(ctx context.Context, result *model.SurveyResult) (model.Roadmap, error) {
	if err := result.Validate(); err != nil {
		return model.Roadmap{}, err
	}
	ctxzap.Debug(s.scope(ctx, "roadmap"), "computing roadmap", zap.Int("options", len(result.Options)))
	return s.engine.ComputeRoadmap(result), nil
}

// Jobs runs only the jobs-to-be-done extractor
func (s *SynthesisService) Jobs(ctx context.Context, result *model.SurveyResult) (model.JobsAnalysis, error) {
	if err := result.Validate(); err != nil {
		return model.JobsAnalysis{}, err
	}
	ctxzap.Debug(s.scope(ctx, "jobs"), "computing jobs", zap.Int("responses", len(result.AllResponses())))
	return s.engine.ComputeJobs(result), nil
}

// Campaign runs only the campaign messaging generator
func (s *SynthesisService) Campaign(ctx context.Context, result *model.SurveyResult) (model.CampaignMessaging, error) {
	if err := result.Validate(); err != nil {
		return model.CampaignMessaging{}, err
	}
	ctxzap.Debug(s.scope(ctx, "campaign"), "computing campaign", zap.Int("platforms", len(result.Groups())))
	return s.engine.ComputeCampaignMessaging(result), nil
}

func (s *SynthesisService) scope(ctx context.Context, action string) context.Context {
	ctx = logger.ToContext(ctx, s.logger.With(zap.String("run_id", uuid.NewString())))
	return logger.WithAction(ctx, action)
}

// compute runs the analyzers in parallel. They share the read-only input
// and each writes its own report field.
func (s *SynthesisService) compute(ctx context.Context, result *model.SurveyResult, fp string) (*model.InsightReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := &model.InsightReport{
		Fingerprint: fp,
		SurveyID:    result.ID,
		Question:    result.Question,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Roadmap = s.engine.ComputeRoadmap(result)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Jobs = s.engine.ComputeJobs(result)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Campaign = s.engine.ComputeCampaignMessaging(result)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return report, nil
}

// memoKey scopes an input fingerprint to the engine configuration, so
// services with different tables or matchers never share reports.
func memoKey(engine *insight.Engine, fingerprint string) string {
	return engine.Signature() + "-" + fingerprint
}

// lookup checks the memo, then Redis. Cache failures count as misses.
func (s *SynthesisService) lookup(ctx context.Context, fp string) *model.InsightReport {
	if s.memo != nil {
		if report, ok := s.memo.Get(fp); ok {
			return report
		}
	}
	if s.cache == nil {
		return nil
	}
	report, err := s.cache.Get(ctx, fp)
	if err != nil {
		ctxzap.Warn(ctx, "insight cache read failed", zap.Error(err))
		return nil
	}
	if report == nil {
		return nil
	}
	if s.memo != nil {
		s.memo.Add(fp, report)
	}
	return report
}

func (s *SynthesisService) store(ctx context.Context, report *model.InsightReport) {
	if s.memo != nil {
		s.memo.Add(report.Fingerprint, report)
	}
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, report); err != nil {
		ctxzap.Warn(ctx, "insight cache write failed", zap.Error(err))
	}
}
