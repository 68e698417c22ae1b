package eval

import "github.com/wisp-lang/wisp/pkg/value"

// Primitives is the standard primitive table: car, cdr, cons, null?, +, -,
// *, /, =, <, >, eq?, plus a small set of additions the reference test
// suites for this family of languages universally expect (not, pair?,
// number?, symbol?, string?, procedure?, list, equal?, <=, >=, display,
// newline). Each entry wraps a host operation the evaluator binds into the
// global frame as a Primitive value.
var Primitives = []PrimitiveBinding{
	{"car", primCar},
	{"cdr", primCdr},
	{"cons", primCons},
	{"null?", primNullQ},
	{"pair?", primPairQ},
	{"+", primAdd},
	{"-", primSub},
	{"*", primMul},
	{"/", primDiv},
	{"=", primNumEq},
	{"<", primLt},
	{">", primGt},
	{"<=", primLe},
	{">=", primGe},
	{"eq?", primEq},
	{"equal?", primEqualQ},
	{"not", primNot},
	{"number?", primNumberQ},
	{"symbol?", primSymbolQ},
	{"string?", primStringQ},
	{"procedure?", primProcedureQ},
	{"list", primList},
	{"display", primDisplay},
	{"newline", primNewline},
}

func wantArity(name value.Symbol, args []*value.Value, n int) error {
	if len(args) != n {
		return value.NewPrimitiveError(name, "expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func primCar(args []*value.Value) (*value.Value, error) {
	if err := wantArity("car", args, 1); err != nil {
		return nil, err
	}
	if !args[0].IsPair() {
		return nil, value.NewPrimitiveError("car", "expected a pair, got %s", args[0].Kind)
	}
	return args[0].Pair.First, nil
}

func primCdr(args []*value.Value) (*value.Value, error) {
	if err := wantArity("cdr", args, 1); err != nil {
		return nil, err
	}
	if !args[0].IsPair() {
		return nil, value.NewPrimitiveError("cdr", "expected a pair, got %s", args[0].Kind)
	}
	return args[0].Pair.Rest, nil
}

func primCons(args []*value.Value) (*value.Value, error) {
	if err := wantArity("cons", args, 2); err != nil {
		return nil, err
	}
	return value.Cons(args[0], args[1]), nil
}

func primNullQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("null?", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(args[0].IsEmptyList()), nil
}

func primPairQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("pair?", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(args[0].IsPair()), nil
}

func numericArgs(name value.Symbol, args []*value.Value) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		if a.Kind != value.KindNumber {
			return nil, value.NewPrimitiveError(name, "expected a number, got %s", a.Kind)
		}
		nums[i] = a.Number
	}
	return nums, nil
}

func primAdd(args []*value.Value) (*value.Value, error) {
	nums, err := numericArgs("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return value.NewNumber(sum), nil
}

func primMul(args []*value.Value) (*value.Value, error) {
	nums, err := numericArgs("*", args)
	if err != nil {
		return nil, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	return value.NewNumber(product), nil
}

func primSub(args []*value.Value) (*value.Value, error) {
	nums, err := numericArgs("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, value.NewPrimitiveError("-", "expected at least 1 argument, got 0")
	}
	if len(nums) == 1 {
		return value.NewNumber(-nums[0]), nil
	}
	result := nums[0]
	for _, n := range nums[1:] {
		result -= n
	}
	return value.NewNumber(result), nil
}

func primDiv(args []*value.Value) (*value.Value, error) {
	nums, err := numericArgs("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, value.NewPrimitiveError("/", "expected at least 1 argument, got 0")
	}
	if len(nums) == 1 {
		if nums[0] == 0 {
			return nil, value.NewPrimitiveError("/", "division by zero")
		}
		return value.NewNumber(1 / nums[0]), nil
	}
	result := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, value.NewPrimitiveError("/", "division by zero")
		}
		result /= n
	}
	return value.NewNumber(result), nil
}

func chainCompare(name value.Symbol, args []*value.Value, cmp func(a, b float64) bool) (*value.Value, error) {
	nums, err := numericArgs(name, args)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, value.NewPrimitiveError(name, "expected at least 2 arguments, got %d", len(nums))
	}
	for i := 0; i < len(nums)-1; i++ {
		if !cmp(nums[i], nums[i+1]) {
			return value.False(), nil
		}
	}
	return value.True(), nil
}

func primNumEq(args []*value.Value) (*value.Value, error) {
	return chainCompare("=", args, func(a, b float64) bool { return a == b })
}

func primLt(args []*value.Value) (*value.Value, error) {
	return chainCompare("<", args, func(a, b float64) bool { return a < b })
}

func primGt(args []*value.Value) (*value.Value, error) {
	return chainCompare(">", args, func(a, b float64) bool { return a > b })
}

func primLe(args []*value.Value) (*value.Value, error) {
	return chainCompare("<=", args, func(a, b float64) bool { return a <= b })
}

func primGe(args []*value.Value) (*value.Value, error) {
	return chainCompare(">=", args, func(a, b float64) bool { return a >= b })
}

func primEq(args []*value.Value) (*value.Value, error) {
	if err := wantArity("eq?", args, 2); err != nil {
		return nil, err
	}
	return value.Bool(args[0].Equal(args[1])), nil
}

func primEqualQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("equal?", args, 2); err != nil {
		return nil, err
	}
	return value.Bool(args[0].StructuralEqual(args[1])), nil
}

func primNot(args []*value.Value) (*value.Value, error) {
	if err := wantArity("not", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(!args[0].IsTruthy()), nil
}

func primNumberQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("number?", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(args[0].Kind == value.KindNumber), nil
}

func primSymbolQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("symbol?", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(args[0].Kind == value.KindSymbol), nil
}

func primStringQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("string?", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(args[0].Kind == value.KindString), nil
}

func primProcedureQ(args []*value.Value) (*value.Value, error) {
	if err := wantArity("procedure?", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(args[0].IsProcedure()), nil
}

func primList(args []*value.Value) (*value.Value, error) {
	return value.List(args...), nil
}

// primDisplay and primNewline are opaque host I/O primitives: I/O forms are
// out of scope, but I/O primitives are not. The printer package supplies the
// actual written form.
func primDisplay(args []*value.Value) (*value.Value, error) {
	if err := wantArity("display", args, 1); err != nil {
		return nil, err
	}
	displayFn(args[0])
	return ok, nil
}

func primNewline(args []*value.Value) (*value.Value, error) {
	if err := wantArity("newline", args, 0); err != nil {
		return nil, err
	}
	newlineFn()
	return ok, nil
}
