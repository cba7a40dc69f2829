package calc

// applyOperation combines a and b with a single binary operator.
func applyOperation(a, b float64, op byte) (float64, Kind) {
	switch op {
	case '+':
		return a + b, 0
	case '-':
		return a - b, 0
	case '*':
		return a * b, 0
	case '/':
		if b == 0 {
			return 0, DivisionByZero
		}
		return a / b, 0
	default:
		return 0, UnknownOperator
	}
}
