// Package shell adapts the navigation guard to the desktop host runtime.
//
// The host runtime calls Navigator.OnNavigation synchronously from its
// navigation-intent callback and cancels the load when it returns false.
// Deep links delivered by the operating system go through OpenDeepLink.
package shell

import (
	"bowshell/internal/deeplink"
	"bowshell/pkg/logger"
	"bowshell/pkg/metrics"
	"bowshell/pkg/navguard"
	"bowshell/pkg/serrors"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "bowshell/internal/shell"

// Navigator owns the guard for the lifetime of the process.
type Navigator struct {
	guard    navguard.Evaluator
	links    deeplink.Resolver
	tracer   trace.Tracer
	verdicts metric.Int64Counter
	duration metric.Float64Histogram
}

// NewNavigator creates a Navigator recording its metrics on meter.
func NewNavigator(guard navguard.Evaluator, links deeplink.Resolver, meter metric.Meter) (*Navigator, error) {
	verdicts, err := meter.Int64Counter("navigation.verdicts",
		metric.WithDescription("Navigation decisions by verdict"))
	if err != nil {
		return nil, fmt.Errorf("could not create verdict counter: %w", err)
	}

	duration, err := meter.Float64Histogram("navigation.evaluation.duration",
		metric.WithDescription("Time spent deciding a navigation"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Navigator{
		guard:    guard,
		links:    links,
		tracer:   otel.Tracer(instrumentationName),
		verdicts: verdicts,
		duration: duration,
	}, nil
}

// Evaluate runs the guard and records the decision. Blocked navigations are
// logged with the rejected URL.
func (n *Navigator) Evaluate(ctx context.Context, target string) navguard.Verdict {
	ctx, span := n.tracer.Start(ctx, "navigation.evaluate")
	defer span.End()

	start := time.Now()
	v := n.guard.Evaluate(target)
	elapsed := time.Since(start).Seconds()

	attrs := metric.WithAttributes(attribute.String("verdict", v.Decision.String()))
	n.verdicts.Add(ctx, 1, attrs)
	n.duration.Record(ctx, elapsed, attrs)
	span.SetAttributes(attribute.String("navigation.verdict", v.Decision.String()))

	if !v.Allowed() {
		logger.Warn(ctx, "navigation blocked", zap.String("url", v.URL))
	}

	return v
}

// OnNavigation is the host runtime's veto hook: it reports whether the
// in-progress load may continue.
func (n *Navigator) OnNavigation(ctx context.Context, target string) bool {
	return n.Evaluate(ctx, target).Allowed()
}

// OpenDeepLink resolves link to an application URL the webview may load.
func (n *Navigator) OpenDeepLink(ctx context.Context, link string) (string, error) {
	target, err := n.links.Resolve(link)
	if err != nil {
		logger.Warn(ctx, "ignoring deep link", zap.String("link", link), zap.Error(err))

		return "", err
	}

	logger.Info(ctx, "deep link received", zap.String("link", link), zap.String("target", target))

	if v := n.Evaluate(ctx, target); !v.Allowed() {
		return "", serrors.With(serrors.ErrBadRequest, "deep link target %q is not allowed", target)
	}

	return target, nil
}
