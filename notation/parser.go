package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/balidoc/bali/collections"
	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
	"github.com/balidoc/bali/structures"
)

// Collection refinement names recognized through the $type parameter.
const (
	setTypeName       = "/bali/collections/Set"
	stackTypeName     = "/bali/collections/Stack"
	exceptionTypeName = "/bali/structures/Exception"
)

// SyntaxError reports a malformed document: the offending line and column,
// what was found there, and the set of tokens that would have been
// accepted.
type SyntaxError struct {
	Line     int
	Column   int
	Found    string
	Expected []string
}

// Error renders the location, the offending text, and the expectations.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("notation: %d:%d: found %q, expected %s",
		e.Line, e.Column, e.Found, strings.Join(e.Expected, " or "))
}

// Parse recognizes a single component literal in the source text and maps
// it onto a component tree. A malformed document returns a *SyntaxError;
// a literal that violates a component invariant returns the construction
// error wrapped in a *structures.Exception with $module "parser".
func Parse(source string) (component.Component, error) {
	p := &parser{tokens: newLexer(source).tokenize()}
	p.skipEOL()
	result, err := p.parseComponent()
	if err != nil {
		return nil, err
	}
	p.skipEOL()
	if end := p.peek(); end.Type != TokenEOF {
		return nil, p.fail(end, "end-of-document")
	}

	return result, nil
}

// parser is a recursive-descent recognizer over the token stream.
type parser struct {
	tokens []Token
	index  int
}

func (p *parser) peek() Token { return p.tokens[p.index] }

func (p *parser) next() Token {
	token := p.tokens[p.index]
	if token.Type != TokenEOF {
		p.index++
	}

	return token
}

// acceptDelimiter consumes the given delimiter when it is next.
func (p *parser) acceptDelimiter(value string) bool {
	if t := p.peek(); t.Type == TokenDelimiter && t.Value == value {
		p.next()

		return true
	}

	return false
}

func (p *parser) skipEOL() {
	for p.peek().Type == TokenEOL {
		p.next()
	}
}

func (p *parser) fail(found Token, expected ...string) error {
	text := found.Value
	if found.Type == TokenEOF {
		text = ""
	}

	return &SyntaxError{
		Line:     found.Line,
		Column:   found.Column,
		Found:    text,
		Expected: expected,
	}
}

// report wraps a component construction error in the conventional parser
// exception without swallowing it.
func report(procedure string, token Token, err error) error {
	return structures.Report(
		"parser", procedure, "literal",
		elements.TextFromString(token.Value),
		err.Error(),
	).Wrap(err)
}

// parseComponent recognizes one component literal, including any trailing
// parameter list.
func (p *parser) parseComponent() (component.Component, error) {
	token := p.peek()
	switch token.Type {
	case TokenDelimiter:
		switch token.Value {
		case "[":
			return p.parseCollection()
		case "(":
			return p.parseComplex()
		}
		return nil, p.fail(token, "a component literal")

	case TokenAngle:
		return p.parseAngle()

	default:
		value, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		parameters, err := p.parseOptionalParameters()
		if err != nil {
			return nil, err
		}

		return attachParameters(value, parameters), nil
	}
}

// parseElement maps one scalar literal token onto its element constructor.
func (p *parser) parseElement() (component.Component, error) {
	token := p.next()
	switch token.Type {
	case TokenReal:
		value, err := parseReal(token.Value)
		if err != nil {
			return nil, p.fail(token, "a real literal")
		}
		return elements.NumberFromReal(value), nil

	case TokenImaginary:
		value, err := parseReal(token.Value)
		if err != nil {
			return nil, p.fail(token, "an imaginary literal")
		}
		return elements.NumberFromRectangular(0, value), nil

	case TokenUndefined:
		return elements.Undefined, nil

	case TokenInfinity:
		// A single infinity absorbs both signs.
		return elements.Infinity, nil

	case TokenFraction:
		value, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			return nil, p.fail(token, "a probability fraction")
		}
		probability, err := elements.ProbabilityFromReal(value)
		if err != nil {
			return nil, report("parseProbability", token, err)
		}
		return probability, nil

	case TokenBoolean:
		return elements.ProbabilityFromBoolean(token.Value == "true"), nil

	case TokenPercent:
		value, err := parseReal(token.Value)
		if err != nil {
			return nil, p.fail(token, "a percent literal")
		}
		percent, err := elements.PercentFromReal(value)
		if err != nil {
			return nil, report("parsePercent", token, err)
		}
		return percent, nil

	case TokenDuration:
		duration, err := parseDuration(token.Value)
		if err != nil {
			return nil, p.fail(token, "a duration literal")
		}
		return duration, nil

	case TokenMoment:
		moment, err := parseMoment(token.Value)
		if err != nil {
			return nil, p.fail(token, "a moment literal")
		}
		return moment, nil

	case TokenResource:
		reference, err := elements.ReferenceFromString(token.Value)
		if err != nil {
			return nil, report("parseReference", token, err)
		}
		return reference, nil

	case TokenName:
		name, err := elements.NameFromParts(strings.Split(strings.TrimPrefix(token.Value, "/"), "/"))
		if err != nil {
			return nil, report("parseName", token, err)
		}
		return name, nil

	case TokenTag:
		tag, err := elements.TagFromString(token.Value)
		if err != nil {
			return nil, report("parseTag", token, err)
		}
		return tag, nil

	case TokenSymbol:
		symbol, err := elements.SymbolFromString(token.Value)
		if err != nil {
			return nil, report("parseSymbol", token, err)
		}
		return symbol, nil

	case TokenText:
		return elements.TextFromString(token.Value), nil

	case TokenBinary:
		binary, err := elements.BinaryFromString(token.Value)
		if err != nil {
			return nil, report("parseBinary", token, err)
		}
		return binary, nil

	case TokenVersion:
		version, err := elements.VersionFromString(token.Value)
		if err != nil {
			return nil, report("parseVersion", token, err)
		}
		return version, nil

	default:
		return nil, p.fail(token, "a component literal")
	}
}

// parseAngle recognizes an angle literal. The $units parameter selects the
// degree constructor, so the raw value must be held until the parameter
// list has been seen.
func (p *parser) parseAngle() (component.Component, error) {
	token := p.next()
	raw, err := parseReal(token.Value)
	if err != nil {
		return nil, p.fail(token, "an angle literal")
	}
	parameters, err := p.parseOptionalParameters()
	if err != nil {
		return nil, err
	}

	var angle elements.Angle
	if isDegrees(parameters) {
		angle, err = elements.AngleFromDegrees(raw)
	} else {
		angle, err = elements.AngleFromRadians(raw)
	}
	if err != nil {
		return nil, report("parseAngle", token, err)
	}

	return angle.WithParameters(parameters), nil
}

// isDegrees reports whether the parameter set carries ($units: $degrees).
func isDegrees(parameters *component.Parameters) bool {
	units := parameters.GetValue("units")
	if units == nil {
		return false
	}
	symbol, ok := units.(elements.Symbol)

	return ok && symbol.GetIdentifier() == "degrees"
}

// parseComplex recognizes the parenthesized number forms: rectangular
// (real, imaginaryi) and polar (magnitude e^anglei).
func (p *parser) parseComplex() (component.Component, error) {
	p.next() // consume '('
	first := p.next()
	if first.Type != TokenReal {
		return nil, p.fail(first, "a real magnitude")
	}
	value, err := parseReal(first.Value)
	if err != nil {
		return nil, p.fail(first, "a real magnitude")
	}

	var number elements.Number
	if p.acceptDelimiter(",") {
		// Rectangular: (real, imaginaryi)
		imaginary := p.next()
		if imaginary.Type != TokenImaginary {
			return nil, p.fail(imaginary, "an imaginary part")
		}
		coefficient, err := parseReal(imaginary.Value)
		if err != nil {
			return nil, p.fail(imaginary, "an imaginary part")
		}
		number = elements.NumberFromRectangular(value, coefficient)
	} else {
		// Polar: (magnitude e^anglei)
		if base := p.next(); base.Type != TokenReal || base.Value != "e" {
			return nil, p.fail(base, "the exponential base e")
		}
		if !p.acceptDelimiter("^") {
			return nil, p.fail(p.peek(), "^")
		}
		phase := p.next()
		if phase.Type != TokenAngle {
			return nil, p.fail(phase, "a phase angle")
		}
		radians, err := parseReal(phase.Value)
		if err != nil {
			return nil, p.fail(phase, "a phase angle")
		}
		angle, err := elements.AngleFromRadians(radians)
		if err != nil {
			return nil, report("parseAngle", phase, err)
		}
		if unit := p.next(); unit.Type != TokenImaginary {
			return nil, p.fail(unit, "the imaginary unit i")
		}
		number = elements.NumberFromPolar(value, angle)
	}
	if !p.acceptDelimiter(")") {
		return nil, p.fail(p.peek(), ")")
	}
	parameters, err := p.parseOptionalParameters()
	if err != nil {
		return nil, err
	}

	return number.WithParameters(parameters), nil
}

// parseCollection recognizes the bracketed literals: list, catalog, range,
// and the empty sentinels [ ] and [:]. The optional trailing parameter list
// selects refined collection types through $type.
func (p *parser) parseCollection() (component.Component, error) {
	p.next() // consume '['
	p.skipEOL()

	// Empty catalog sentinel [:]
	if p.acceptDelimiter(":") {
		if !p.acceptDelimiter("]") {
			return nil, p.fail(p.peek(), "]")
		}
		parameters, err := p.parseOptionalParameters()
		if err != nil {
			return nil, err
		}
		return buildKeyed(nil, parameters), nil
	}

	// Empty list sentinel [ ]
	if p.acceptDelimiter("]") {
		parameters, err := p.parseOptionalParameters()
		if err != nil {
			return nil, err
		}
		return buildOrdinal(nil, parameters), nil
	}

	first, err := p.parseComponent()
	if err != nil {
		return nil, err
	}

	// Range: [first..last]
	if p.acceptDelimiter("..") {
		return p.parseRangeTail(first)
	}

	// Catalog: [key: value, ...] in document order, last-key-wins.
	if p.acceptDelimiter(":") {
		return p.parseCatalogTail(first)
	}

	// List: [item, ...] in document order.
	items := []component.Component{first}
	for p.acceptSeparator() {
		if p.acceptDelimiter("]") {
			parameters, err := p.parseOptionalParameters()
			if err != nil {
				return nil, err
			}
			return buildOrdinal(items, parameters), nil
		}
		item, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if !p.acceptDelimiter("]") {
		return nil, p.fail(p.peek(), ",", "]")
	}
	parameters, err := p.parseOptionalParameters()
	if err != nil {
		return nil, err
	}

	return buildOrdinal(items, parameters), nil
}

// acceptSeparator consumes an item separator: a comma or one or more
// newlines. It reports whether a separator was present.
func (p *parser) acceptSeparator() bool {
	if p.acceptDelimiter(",") {
		p.skipEOL()

		return true
	}
	if p.peek().Type == TokenEOL {
		p.skipEOL()

		return true
	}

	return false
}

// parseRangeTail recognizes the remainder of [first..last].
func (p *parser) parseRangeTail(first component.Component) (component.Component, error) {
	start, ok := asInteger(first)
	if !ok {
		return nil, p.fail(p.peek(), "an integer range endpoint")
	}
	lastToken := p.peek()
	last, err := p.parseComponent()
	if err != nil {
		return nil, err
	}
	end, ok := asInteger(last)
	if !ok {
		return nil, p.fail(lastToken, "an integer range endpoint")
	}
	if !p.acceptDelimiter("]") {
		return nil, p.fail(p.peek(), "]")
	}
	parameters, err := p.parseOptionalParameters()
	if err != nil {
		return nil, err
	}
	span, err := collections.RangeWithParameters(start, end, parameters)
	if err != nil {
		return nil, report("parseRange", lastToken, err)
	}

	return span, nil
}

// asInteger projects a parsed component onto an integral range endpoint.
func asInteger(c component.Component) (int64, bool) {
	number, ok := c.(elements.Number)
	if !ok {
		return 0, false
	}
	real := number.AsReal()
	if real != math.Trunc(real) || math.IsInf(real, 0) || math.IsNaN(real) {
		return 0, false
	}

	return int64(real), true
}

// parseCatalogTail recognizes the remainder of a catalog literal after the
// first key and its colon have been consumed.
func (p *parser) parseCatalogTail(firstKey component.Component) (component.Component, error) {
	var entries []*structures.Association
	key := firstKey
	for {
		p.skipEOL()
		value, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		entry, err := structures.NewAssociation(key, value)
		if err != nil {
			return nil, report("parseAssociation", p.peek(), err)
		}
		entries = append(entries, entry)

		if !p.acceptSeparator() {
			break
		}
		if t := p.peek(); t.Type == TokenDelimiter && t.Value == "]" {
			break
		}
		key, err = p.parseComponent()
		if err != nil {
			return nil, err
		}
		if !p.acceptDelimiter(":") {
			return nil, p.fail(p.peek(), ":")
		}
	}
	if !p.acceptDelimiter("]") {
		return nil, p.fail(p.peek(), ",", "]")
	}
	parameters, err := p.parseOptionalParameters()
	if err != nil {
		return nil, err
	}

	return buildKeyed(entries, parameters), nil
}

// parseOptionalParameters recognizes a trailing parameter list
// ($name: value, ...) when present.
func (p *parser) parseOptionalParameters() (*component.Parameters, error) {
	if t := p.peek(); t.Type != TokenDelimiter || t.Value != "(" {
		return nil, nil
	}
	p.next() // consume '('
	var entries []component.Parameter
	for {
		p.skipEOL()
		symbol := p.next()
		if symbol.Type != TokenSymbol {
			return nil, p.fail(symbol, "a parameter symbol")
		}
		if !p.acceptDelimiter(":") {
			return nil, p.fail(p.peek(), ":")
		}
		p.skipEOL()
		value, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		entries = append(entries, component.Parameter{Name: symbol.Value, Value: value})

		if !p.acceptSeparator() {
			break
		}
		if t := p.peek(); t.Type == TokenDelimiter && t.Value == ")" {
			break
		}
	}
	if !p.acceptDelimiter(")") {
		return nil, p.fail(p.peek(), ",", ")")
	}
	parameters, err := component.NewParameters(entries...)
	if err != nil {
		return nil, report("parseParameters", p.peek(), err)
	}

	return parameters, nil
}

// buildOrdinal constructs the collection an item-sequence literal denotes,
// honoring the $type refinement: a Set, a Stack, or by default a List, in
// document order.
func buildOrdinal(items []component.Component, parameters *component.Parameters) component.Component {
	switch refinedType(parameters) {
	case setTypeName:
		set := collections.NewSetWithParameters(parameters)
		for _, item := range items {
			set.AddItem(item)
		}
		return set
	case stackTypeName:
		stack := collections.NewStackWithParameters(parameters)
		for _, item := range items {
			stack.AddItem(item)
		}
		return stack
	default:
		list := collections.NewListWithParameters(parameters)
		for _, item := range items {
			list.AddItem(item)
		}
		return list
	}
}

// buildKeyed constructs the component an association-sequence literal
// denotes: an Exception under the $type refinement, otherwise a Catalog
// with last-key-wins for duplicate keys.
func buildKeyed(entries []*structures.Association, parameters *component.Parameters) component.Component {
	if refinedType(parameters) == exceptionTypeName {
		attributes := make([]component.Parameter, 0, len(entries))
		for _, entry := range entries {
			symbol, ok := entry.GetKey().(elements.Symbol)
			if !ok {
				continue
			}
			attributes = append(attributes, component.Parameter{
				Name:  symbol.GetIdentifier(),
				Value: entry.GetValue(),
			})
		}
		return structures.NewException(attributes...)
	}

	catalog := collections.NewCatalogWithParameters(parameters)
	for _, entry := range entries {
		catalog.AddItem(entry)
	}

	return catalog
}

// refinedType extracts the $type parameter as a name, stripping any
// trailing version part.
func refinedType(parameters *component.Parameters) string {
	value := parameters.GetValue("type")
	if value == nil {
		return ""
	}
	name, ok := value.(elements.Name)
	if !ok {
		return ""
	}
	text := name.AsString()
	if i := strings.LastIndex(text, "/v"); i > 0 {
		text = text[:i]
	}

	return text
}

// attachParameters fixes the parameter set onto a freshly constructed
// element after its value has been normalized.
func attachParameters(value component.Component, parameters *component.Parameters) component.Component {
	if parameters == nil {
		return value
	}
	switch element := value.(type) {
	case elements.Angle:
		return element.WithParameters(parameters)
	case elements.Number:
		return element.WithParameters(parameters)
	case elements.Percent:
		return element.WithParameters(parameters)
	case elements.Probability:
		return element.WithParameters(parameters)
	case elements.Duration:
		return element.WithParameters(parameters)
	case elements.Moment:
		return element.WithParameters(parameters)
	case elements.Name:
		return element.WithParameters(parameters)
	case elements.Tag:
		return element.WithParameters(parameters)
	case elements.Symbol:
		return element.WithParameters(parameters)
	case elements.Text:
		return element.WithParameters(parameters)
	case elements.Binary:
		return element.WithParameters(parameters)
	case elements.Version:
		return element.WithParameters(parameters)
	case elements.Reference:
		return element.WithParameters(parameters)
	default:
		return value
	}
}

// parseReal converts a real literal, resolving the named constants e, pi
// and phi with an optional negating sign prefix.
func parseReal(text string) (float64, error) {
	switch text {
	case "e":
		return math.E, nil
	case "-e":
		return -math.E, nil
	case "pi":
		return math.Pi, nil
	case "-pi":
		return -math.Pi, nil
	case "phi":
		return math.Phi, nil
	case "-phi":
		return -math.Phi, nil
	default:
		return strconv.ParseFloat(text, 64)
	}
}

// parseDuration converts an ISO-8601 style period literal (the payload
// after the tilde) into a Duration.
func parseDuration(text string) (elements.Duration, error) {
	payload := text
	negative := false
	if strings.HasPrefix(payload, "-") {
		negative = true
		payload = payload[1:]
	}
	if !strings.HasPrefix(payload, "P") {
		return elements.Duration{}, fmt.Errorf("notation: period must begin with P: %q", text)
	}
	payload = payload[1:]

	datePart := payload
	clockPart := ""
	if i := strings.IndexByte(payload, 'T'); i >= 0 {
		datePart, clockPart = payload[:i], payload[i+1:]
	}

	dateSpans := map[byte]int64{
		'Y': 31556952000, 'M': 2629746000, 'W': 604800000, 'D': 86400000,
	}
	clockSpans := map[byte]int64{
		'H': 3600000, 'M': 60000, 'S': 1000,
	}

	var total float64
	consume := func(section string, spans map[byte]int64) error {
		start := 0
		for i := 0; i < len(section); i++ {
			c := section[i]
			if isDigit(c) || c == '.' {
				continue
			}
			span, ok := spans[c]
			if !ok || start == i {
				return fmt.Errorf("notation: malformed period: %q", text)
			}
			value, err := strconv.ParseFloat(section[start:i], 64)
			if err != nil {
				return fmt.Errorf("notation: malformed period: %q", text)
			}
			total += value * float64(span)
			start = i + 1
		}
		if start != len(section) {
			return fmt.Errorf("notation: malformed period: %q", text)
		}

		return nil
	}
	if err := consume(datePart, dateSpans); err != nil {
		return elements.Duration{}, err
	}
	if err := consume(clockPart, clockSpans); err != nil {
		return elements.Duration{}, err
	}

	milliseconds := int64(math.Round(total))
	if negative {
		milliseconds = -milliseconds
	}

	return elements.DurationFromMilliseconds(milliseconds), nil
}

// Moment literal layouts, most specific first.
var momentLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseMoment converts a moment literal payload into a Moment.
func parseMoment(text string) (elements.Moment, error) {
	for _, layout := range momentLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return elements.MomentFromTime(t), nil
		}
	}

	return elements.Moment{}, fmt.Errorf("notation: malformed moment: %q", text)
}
