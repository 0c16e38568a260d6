// Package policy gates local action execution with an OPA rego policy.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// Decision values returned by the policy.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// ActionInput is the evaluation input for one action execution.
type ActionInput struct {
	Action     string  `json:"action"`
	Surface    string  `json:"surface"`
	Confidence float64 `json:"confidence"`
}

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.carbobot.action_policy.decision"),
		rego.Module("action_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate decides whether the action may run locally. A deny means the
// orchestrator skips the action and falls through to inference.
func (e *Engine) Evaluate(ctx context.Context, action domain.ActionID, surface domain.Surface, confidence float64) (string, error) {
	input := ActionInput{
		Action:     string(action),
		Surface:    string(surface),
		Confidence: confidence,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The default policy always defines a decision; an empty result
		// means a custom policy without one, so allow.
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionAllow, nil
}

// DefaultPolicy is the default policy content: every action is allowed on
// the known surfaces, and collaborator-backed actions are denied anywhere
// else.
const DefaultPolicy = `
package carbobot.action_policy

default decision = "allow"

known_surface {
	input.surface == "web"
}

known_surface {
	input.surface == "cli"
}

collaborator_action {
	input.action == "showNearbyPoints"
}

collaborator_action {
	input.action == "showImpact"
}

decision = "deny" {
	collaborator_action
	not known_surface
}
`
