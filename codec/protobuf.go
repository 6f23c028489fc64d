package codec

import "google.golang.org/protobuf/proto"

// Protobuf encodes generated messages. The constructor returns an empty
// message to decode into, e.g. func() *pb.User { return &pb.User{} }.
type Protobuf[T proto.Message] struct {
	new  func() T
	opts proto.MarshalOptions
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

// Deterministic returns a copy that orders map fields when marshaling.
func (c Protobuf[T]) Deterministic() Protobuf[T] {
	c.opts.Deterministic = true
	return c
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return c.opts.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
