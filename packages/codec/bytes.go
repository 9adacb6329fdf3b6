package codec

var (
	// String and Bytes encode the raw value without a length prefix; callers
	// embedding them into a larger payload add one via AddLengthPrefix.
	String = NewCodec(
		func(v string) []byte { return []byte(v) },
		func(b []byte) (string, error) { return string(b), nil },
	)
	Bytes = NewCodec(
		func(v []byte) []byte { return v },
		func(b []byte) ([]byte, error) { return b, nil },
	)
)
