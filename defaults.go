package strfmt

func registerDefaultFormatters(env *Environment) {
	// Text
	env.AddFormatter("upper", FormatterUpper)
	env.AddFormatter("lower", FormatterLower)
	env.AddFormatter("pad", FormatterPad)
	env.AddFormatter("plural", FormatterPlural)

	// Numbers
	env.AddFormatter("multiply", FormatterMultiply)
	env.AddFormatter("number", FormatterNumber)
	env.AddFormatter("currency", FormatterCurrency)

	// Dates
	env.AddFormatter("date", FormatterDate)
	env.AddFormatter("time", FormatterTime)
}
