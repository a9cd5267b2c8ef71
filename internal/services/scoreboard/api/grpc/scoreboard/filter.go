package scoreboard

import (
	"cmp"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/scoreboard/internal/platform/errors"
	"github.com/louisbranch/scoreboard/internal/services/scoreboard/domain"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// matchPredicate reports whether a match passes a list filter.
type matchPredicate func(domain.Match) bool

func matchAll(domain.Match) bool { return true }

// matchFields resolves filter identifiers against a match.
var matchFields = map[string]func(domain.Match) any{
	"home_team":   func(m domain.Match) any { return m.HomeTeam },
	"away_team":   func(m domain.Match) any { return m.AwayTeam },
	"home_score":  func(m domain.Match) any { return int64(m.HomeScore) },
	"away_score":  func(m domain.Match) any { return int64(m.AwayScore) },
	"total_score": func(m domain.Match) any { return int64(m.TotalScore()) },
}

func matchDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("home_team", filtering.TypeString),
		filtering.DeclareIdent("away_team", filtering.TypeString),
		filtering.DeclareIdent("home_score", filtering.TypeInt),
		filtering.DeclareIdent("away_score", filtering.TypeInt),
		filtering.DeclareIdent("total_score", filtering.TypeInt),
	)
}

// parseMatchFilter compiles an AIP-160 filter into a predicate. An empty
// filter matches everything.
func parseMatchFilter(filterStr string) (matchPredicate, error) {
	if strings.TrimSpace(filterStr) == "" {
		return matchAll, nil
	}

	decls, err := matchDeclarations()
	if err != nil {
		return nil, fmt.Errorf("create declarations: %w", err)
	}
	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, invalidFilter(err)
	}
	if filter.CheckedExpr == nil || filter.CheckedExpr.GetExpr() == nil {
		return matchAll, nil
	}
	pred, err := compileExpr(filter.CheckedExpr.GetExpr())
	if err != nil {
		return nil, invalidFilter(err)
	}
	return pred, nil
}

func invalidFilter(cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeFilterInvalid,
		fmt.Sprintf("invalid filter: %v", cause),
		map[string]string{"Reason": cause.Error()},
		cause,
	)
}

func compileExpr(e *expr.Expr) (matchPredicate, error) {
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return nil, fmt.Errorf("unsupported expression %T", e.GetExprKind())
	}
	fn := call.CallExpr.GetFunction()
	args := call.CallExpr.GetArgs()

	switch fn {
	case filtering.FunctionAnd, filtering.FunctionFuzzyAnd:
		return compileLogical(args, func(a, b bool) bool { return a && b }, fn)
	case filtering.FunctionOr:
		return compileLogical(args, func(a, b bool) bool { return a || b }, fn)
	case filtering.FunctionNot:
		if len(args) != 1 {
			return nil, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := compileExpr(args[0])
		if err != nil {
			return nil, err
		}
		return func(m domain.Match) bool { return !inner(m) }, nil
	case filtering.FunctionEquals, filtering.FunctionNotEquals,
		filtering.FunctionLessThan, filtering.FunctionLessEquals,
		filtering.FunctionGreaterThan, filtering.FunctionGreaterEquals:
		return compileComparison(args, fn)
	default:
		return nil, fmt.Errorf("unsupported function %s", fn)
	}
}

func compileLogical(args []*expr.Expr, join func(a, b bool) bool, fn string) (matchPredicate, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%s requires at least 2 arguments", fn)
	}
	preds := make([]matchPredicate, 0, len(args))
	for _, arg := range args {
		p, err := compileExpr(arg)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return func(m domain.Match) bool {
		result := preds[0](m)
		for _, p := range preds[1:] {
			result = join(result, p(m))
		}
		return result
	}, nil
}

func compileComparison(args []*expr.Expr, op string) (matchPredicate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s requires 2 arguments", op)
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return nil, fmt.Errorf("left side of %s must be a field", op)
	}
	field, ok := matchFields[ident.IdentExpr.GetName()]
	if !ok {
		return nil, fmt.Errorf("unknown field %s", ident.IdentExpr.GetName())
	}
	constant, ok := args[1].GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return nil, fmt.Errorf("right side of %s must be a literal", op)
	}

	var compare func(domain.Match) int
	switch v := constant.ConstExpr.GetConstantKind().(type) {
	case *expr.Constant_StringValue:
		compare = func(m domain.Match) int {
			s, _ := field(m).(string)
			return strings.Compare(s, v.StringValue)
		}
	case *expr.Constant_Int64Value:
		compare = func(m domain.Match) int {
			n, _ := field(m).(int64)
			return cmp.Compare(n, v.Int64Value)
		}
	default:
		return nil, fmt.Errorf("unsupported literal %T", v)
	}

	var accept func(int) bool
	switch op {
	case filtering.FunctionEquals:
		accept = func(c int) bool { return c == 0 }
	case filtering.FunctionNotEquals:
		accept = func(c int) bool { return c != 0 }
	case filtering.FunctionLessThan:
		accept = func(c int) bool { return c < 0 }
	case filtering.FunctionLessEquals:
		accept = func(c int) bool { return c <= 0 }
	case filtering.FunctionGreaterThan:
		accept = func(c int) bool { return c > 0 }
	case filtering.FunctionGreaterEquals:
		accept = func(c int) bool { return c >= 0 }
	}
	return func(m domain.Match) bool { return accept(compare(m)) }, nil
}
