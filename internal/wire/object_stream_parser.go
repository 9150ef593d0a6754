package wire

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

type objectParserConfig struct {
	allowUnknownStatus bool
}

type ObjectParserOption func(*objectParserConfig)

// AllowUnknownObjectStatus makes the parsers accept object status values
// that are not defined by the current version.
func AllowUnknownObjectStatus() ObjectParserOption {
	return func(c *objectParserConfig) {
		c.allowUnknownStatus = true
	}
}

func newObjectParserConfig(opts []ObjectParserOption) objectParserConfig {
	cfg := objectParserConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type streamReader interface {
	messageReader
	io.ByteScanner
}

// ObjectStreamParser reads the header of a unidirectional data stream and
// then the objects that follow it.
type ObjectStreamParser struct {
	reader streamReader
	typ    StreamType
	cfg    objectParserConfig

	subgroupHeader StreamHeaderSubgroupMessage
	fetchHeader    FetchHeaderMessage
}

func NewObjectStreamParser(r io.Reader, opts ...ObjectParserOption) (*ObjectStreamParser, error) {
	br, ok := r.(streamReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	st, err := readVarint(br)
	if err != nil {
		return nil, err
	}
	p := &ObjectStreamParser{
		reader: br,
		typ:    StreamType(st),
		cfg:    newObjectParserConfig(opts),
	}
	switch p.typ {
	case StreamTypeSubgroupHeader:
		err = p.subgroupHeader.parse(br)
	case StreamTypeFetchHeader:
		err = p.fetchHeader.parse(br)
	default:
		return nil, UnknownStreamTypeError{Type: p.typ}
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ObjectStreamParser) Type() StreamType {
	return p.typ
}

func (p *ObjectStreamParser) SubgroupHeader() (*StreamHeaderSubgroupMessage, error) {
	if p.typ != StreamTypeSubgroupHeader {
		return nil, errors.New("only subgroup streams have a subgroup header")
	}
	h := p.subgroupHeader
	return &h, nil
}

func (p *ObjectStreamParser) FetchHeader() (*FetchHeaderMessage, error) {
	if p.typ != StreamTypeFetchHeader {
		return nil, errors.New("only fetch streams have a fetch header")
	}
	h := p.fetchHeader
	return &h, nil
}

// Messages yields objects until the stream ends. A clean end of stream is
// not reported; any other error is yielded once and ends the sequence.
func (p *ObjectStreamParser) Messages() iter.Seq2[*ObjectMessage, error] {
	return func(yield func(*ObjectMessage, error) bool) {
		for {
			m, err := p.Parse()
			if err == io.EOF {
				return
			}
			if !yield(m, err) || err != nil {
				return
			}
		}
	}
}

// Parse returns the next object. It returns io.EOF if the stream ends on an
// object boundary and ErrTruncated if it ends inside an object.
func (p *ObjectStreamParser) Parse() (*ObjectMessage, error) {
	if _, err := p.reader.ReadByte(); err != nil {
		return nil, err
	}
	if err := p.reader.UnreadByte(); err != nil {
		return nil, err
	}
	switch p.typ {
	case StreamTypeSubgroupHeader:
		var o StreamObject
		if err := o.parse(p.reader, p.cfg.allowUnknownStatus); err != nil {
			return nil, err
		}
		return &ObjectMessage{
			TrackAlias:        p.subgroupHeader.TrackAlias,
			GroupID:           p.subgroupHeader.GroupID,
			SubgroupID:        p.subgroupHeader.SubgroupID,
			ObjectID:          o.ObjectID,
			PublisherPriority: p.subgroupHeader.PublisherPriority,
			ObjectStatus:      o.ObjectStatus,
			ObjectPayload:     o.ObjectPayload,
		}, nil

	case StreamTypeFetchHeader:
		var o FetchObject
		if err := o.parse(p.reader, p.cfg.allowUnknownStatus); err != nil {
			return nil, err
		}
		return &ObjectMessage{
			SubscribeID:       p.fetchHeader.SubscribeID,
			GroupID:           o.GroupID,
			SubgroupID:        o.SubgroupID,
			ObjectID:          o.ObjectID,
			PublisherPriority: o.PublisherPriority,
			ObjectStatus:      o.ObjectStatus,
			ObjectPayload:     o.ObjectPayload,
		}, nil
	}
	return nil, UnknownStreamTypeError{Type: p.typ}
}
