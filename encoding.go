package zeromt

import (
	"bytes"

	"github.com/drand/kyber"
	"github.com/pkg/errors"
)

// Encoder concatenates the canonical encodings of points and scalars. The
// first failure is kept and returned by Bytes.
type Encoder struct {
	buf bytes.Buffer
	err error
}

func (e *Encoder) Point(p Point) {
	if e.err != nil {
		return
	}
	if p == nil {
		e.err = errors.Wrap(ErrPointSerialization, "encoding nil point")
		return
	}
	if _, err := p.MarshalTo(&e.buf); err != nil {
		e.err = errors.Wrapf(ErrPointSerialization, "encoding point: %v", err)
	}
}

func (e *Encoder) Points(ps []Point) {
	for _, p := range ps {
		e.Point(p)
	}
}

func (e *Encoder) Scalar(s Scalar) {
	if e.err != nil {
		return
	}
	if s == nil {
		e.err = errors.New("encoding nil scalar")
		return
	}
	if _, err := s.MarshalTo(&e.buf); err != nil {
		e.err = errors.Wrap(err, "encoding scalar")
	}
}

func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

// Decoder reads back what an Encoder wrote. Any short read, invalid encoding
// or trailing data makes Done return ErrMalformedProof.
type Decoder struct {
	r   *bytes.Reader
	g   kyber.Group
	err error
}

func NewDecoder(g kyber.Group, data []byte) *Decoder {
	return &Decoder{r: bytes.NewReader(data), g: g}
}

func (d *Decoder) Point() Point {
	p := d.g.Point()
	if d.err != nil {
		return p.Null()
	}
	if _, err := p.UnmarshalFrom(d.r); err != nil {
		d.err = errors.Wrapf(ErrMalformedProof, "decoding point: %v", err)
		return p.Null()
	}
	return p
}

func (d *Decoder) Points(n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = d.Point()
	}
	return out
}

func (d *Decoder) Scalar() Scalar {
	s := d.g.Scalar()
	if d.err != nil {
		return s.Zero()
	}
	if _, err := s.UnmarshalFrom(d.r); err != nil {
		d.err = errors.Wrapf(ErrMalformedProof, "decoding scalar: %v", err)
		return s.Zero()
	}
	return s
}

func (d *Decoder) Done() error {
	if d.err != nil {
		return d.err
	}
	if d.r.Len() != 0 {
		return errors.Wrapf(ErrMalformedProof, "%d trailing bytes", d.r.Len())
	}
	return nil
}
