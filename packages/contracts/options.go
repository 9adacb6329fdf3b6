package contracts

// CallOptions carries the funds and gas attached to a message call.
type CallOptions struct {
	Value    uint64
	GasLimit uint64
}

func NewCallOptions() *CallOptions {
	return &CallOptions{}
}

func (o *CallOptions) WithValue(value uint64) *CallOptions {
	o.Value = value
	return o
}

func (o *CallOptions) WithGasLimit(gasLimit uint64) *CallOptions {
	o.GasLimit = gasLimit
	return o
}

// DeployOptions carries the optional parameters of an instantiation.
// The zero value means: no funds, no gas limit, empty salt.
type DeployOptions struct {
	CallOptions
	Salt []byte
}

func NewDeployOptions() *DeployOptions {
	return &DeployOptions{}
}

func (o *DeployOptions) WithValue(value uint64) *DeployOptions {
	o.Value = value
	return o
}

func (o *DeployOptions) WithGasLimit(gasLimit uint64) *DeployOptions {
	o.GasLimit = gasLimit
	return o
}

func (o *DeployOptions) WithSalt(salt []byte) *DeployOptions {
	o.Salt = salt
	return o
}

func (o *DeployOptions) WithSaltString(salt string) *DeployOptions {
	o.Salt = []byte(salt)
	return o
}

func defaultDeployOptions(opts *DeployOptions) *DeployOptions {
	if opts == nil {
		return NewDeployOptions()
	}
	return opts
}

func defaultCallOptions(opts *CallOptions) *CallOptions {
	if opts == nil {
		return NewCallOptions()
	}
	return opts
}
