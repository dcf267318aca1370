package vector

import (
	"fmt"

	goccyjson "github.com/goccy/go-json"
)

// jsonValue widens nbits so out-of-range input is masked like CreateDataInfo
// does instead of failing the decode.
type jsonValue struct {
	NBits  int  `json:"nbits"`
	Signed bool `json:"signed"`
}

// EncodeJSON renders v as {"nbits":N,"signed":B}.
func EncodeJSON(v Value) ([]byte, error) {
	return goccyjson.Marshal(v)
}

func DecodeJSON(data []byte) (Value, error) {
	var jv jsonValue
	if err := goccyjson.Unmarshal(data, &jv); err != nil {
		return Value{}, fmt.Errorf("DecodeJSON: %w", err)
	}
	return Value{NBits: uint8(jv.NBits & 0xFF), Signed: jv.Signed}, nil
}
