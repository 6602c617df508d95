package pattern

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	rleComment = '#'
	rleDead    = 'b'
	rleAlive   = 'o'
	rleEOL     = '$'
	rleEnd     = '!'

	// maxRunCount bounds a single run so cursor arithmetic cannot overflow
	maxRunCount = 1 << 30
)

// conwayRules are the rule strings that describe B3/S23
var conwayRules = map[string]bool{
	"B3/S23": true,
	"23/3":   true,
}

// RLEDecoder reads the .rle format: '#' comment lines, an "x = W, y = H"
// header, then a body of <count><tag> tokens terminated by '!'
type RLEDecoder struct {
	// MaxCells caps the number of live cells; zero means no cap
	MaxCells int
}

// Decode returns a spec of H rows by W columns
func (d RLEDecoder) Decode(lines []string) (model.PatternSpec, error) {
	var (
		spec       model.PatternSpec
		headerSeen bool
		p          = rleParser{maxCells: d.MaxCells, spec: &spec}
	)
	for i, line := range lines {
		if strings.HasPrefix(line, string(rleComment)) {
			continue
		}
		if !headerSeen {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := parseHeader(line, &spec); err != nil {
				return model.PatternSpec{}, errors.Wrapf(err, "[RLEDecoder.Decode] line %d", i+1)
			}
			headerSeen = true
			continue
		}
		done, err := p.feed(line)
		if err != nil {
			return model.PatternSpec{}, errors.Wrapf(err, "[RLEDecoder.Decode] line %d", i+1)
		}
		if done {
			break
		}
	}
	if !headerSeen {
		return model.PatternSpec{}, errors.Wrap(model.ErrUnsupportedFormat, "[RLEDecoder.Decode] missing header")
	}
	if p.hasRun {
		return model.PatternSpec{}, errors.Wrapf(model.ErrMalformedPattern,
			"[RLEDecoder.Decode] run count %d has no tag", p.run)
	}
	return spec, nil
}

// parseHeader reads comma separated "key = value" pairs in any order.
// x and y are required, rule is optional.
func parseHeader(line string, spec *model.PatternSpec) error {
	var haveX, haveY bool
	for _, field := range strings.Split(line, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return errors.Wrapf(model.ErrUnsupportedFormat, "[parseHeader] expected key = value, got %q", strings.TrimSpace(field))
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrapf(model.ErrMalformedPattern, "[parseHeader] %s = %q is not an integer", key, value)
			}
			if n < 0 {
				return errors.Wrapf(model.ErrInvalidDimension, "[parseHeader] %s = %d", key, n)
			}
			if key == "x" {
				spec.Cols, haveX = n, true
			} else {
				spec.Rows, haveY = n, true
			}
		case "rule":
			rule := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
			if !conwayRules[rule] {
				return errors.Wrapf(model.ErrUnsupportedFormat, "[parseHeader] unsupported rule %q", value)
			}
			spec.Rule = rule
		}
	}
	if !haveX || !haveY {
		return errors.Wrapf(model.ErrUnsupportedFormat, "[parseHeader] header %q needs both x and y", line)
	}
	return nil
}

// rleParser holds the cursor state of a body across lines
type rleParser struct {
	spec     *model.PatternSpec
	maxCells int

	row, col int
	run      int
	hasRun   bool
}

// feed consumes one body line. done is true once '!' has been read.
func (p *rleParser) feed(line string) (done bool, err error) {
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch >= '0' && ch <= '9':
			p.run = p.run*10 + int(ch-'0')
			p.hasRun = true
			if p.run > maxRunCount {
				return false, errors.Wrapf(model.ErrMalformedPattern, "[feed] run count exceeds %d", maxRunCount)
			}
		case ch == rleDead:
			n, err := p.take(ch)
			if err != nil {
				return false, err
			}
			p.col += n
		case ch == rleAlive:
			n, err := p.take(ch)
			if err != nil {
				return false, err
			}
			if err := p.mark(n); err != nil {
				return false, err
			}
		case ch == rleEOL:
			n, err := p.take(ch)
			if err != nil {
				return false, err
			}
			p.row += n
			p.col = 0
		case ch == rleEnd:
			if p.hasRun {
				return false, errors.Wrapf(model.ErrMalformedPattern, "[feed] run count %d before '!'", p.run)
			}
			return true, nil
		case ch == ' ' || ch == '\t' || ch == '\r':
		default:
			return false, errors.Wrapf(model.ErrMalformedPattern, "[feed] unexpected character %q", ch)
		}
	}
	return false, nil
}

// take returns the pending run count for tag, defaulting to 1
func (p *rleParser) take(tag byte) (int, error) {
	if !p.hasRun {
		return 1, nil
	}
	n := p.run
	p.run, p.hasRun = 0, false
	if n == 0 {
		return 0, errors.Wrapf(model.ErrMalformedPattern, "[take] zero run count before %q", tag)
	}
	return n, nil
}

// mark records n alive cells from the cursor. Cells past the declared width
// or height are not recorded but still advance the cursor.
func (p *rleParser) mark(n int) error {
	visible := min(n, max(0, p.spec.Cols-p.col))
	if p.row >= p.spec.Rows {
		visible = 0
	}
	for k := range visible {
		if p.maxCells > 0 && len(p.spec.Cells) >= p.maxCells {
			return errors.Wrapf(model.ErrPatternTooLarge, "[mark] more than %d live cells", p.maxCells)
		}
		p.spec.Add(p.row, p.col+k)
	}
	p.col += n
	return nil
}
