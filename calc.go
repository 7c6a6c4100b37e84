package rpncalc

// Calculator converts, evaluates, and formats expressions. A Calculator is
// never modified after New returns, so it is safe for concurrent use.
type Calculator struct {
	ops opTable
	f   Formatter
}

// New creates a Calculator. Options are applied in order.
func New(opts ...Option) *Calculator {
	c := Calculator{
		ops: defaultOps.clone(),
		f:   Formatter{Decimals: DefaultDecimals},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.calcOption(&c)
	}
	return &c
}

// std is the calculator used by the package-level functions.
var std = New()

// Convert converts an infix expression to RPN. If src contains no tokens, the
// error is an *EmptyExpressionError.
func (c *Calculator) Convert(src string) (RPN, error) {
	return convert(src, c.ops)
}

// EvalString converts and evaluates an expression.
func (c *Calculator) EvalString(src string) (float64, error) {
	rpn, err := c.Convert(src)
	if err != nil {
		return 0, err
	}
	return Eval(rpn)
}

// Format formats a result.
func (c *Calculator) Format(x float64) string {
	return c.f.Format(x)
}

// Calculate evaluates an expression and formats the result for display. Use
// IsEmpty to distinguish an input with nothing to evaluate from a failure.
func (c *Calculator) Calculate(src string) (string, error) {
	x, err := c.EvalString(src)
	if err != nil {
		return "", err
	}
	return c.f.Format(x), nil
}

// Convert converts an infix expression to RPN using the default operator
// table, in which every operator is left-associative.
func Convert(src string) (RPN, error) {
	return std.Convert(src)
}

// EvalString is a shortcut to convert and evaluate an expression.
func EvalString(src string) (float64, error) {
	return std.EvalString(src)
}

// Calculate is a shortcut to evaluate an expression and format its result
// with the default calculator.
func Calculate(src string) (string, error) {
	return std.Calculate(src)
}
