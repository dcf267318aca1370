package vector

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/quickwritereader/filovec/access"
	"github.com/vmihailenco/msgpack/v5"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

var sample = Value{NBits: 17, Signed: true}

var sinkBytes []byte
var sinkValue Value

func BenchmarkDataInfo_Builder(b *testing.B) {
	const count = 1000

	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		bld := access.AcquireBuilder()
		for j := 0; j < count; j++ {
			if _, err := CreateDataInfo(bld, int(sample.NBits), sample.Signed); err != nil {
				b.Fatal(err)
			}
		}
		sinkBytes = bld.Bytes()
		access.ReleaseBuilder(bld)
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perRecord := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	b.Logf("Builder: per-record = %.2f ns/op, %.2f ops/sec", perRecord, 1e9/perRecord)
}

func BenchmarkDataInfo_View(b *testing.B) {
	buf := []byte{0x11, 0x01}
	var info DataInfo

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		info.Init(buf, 0)
		v, err := info.Unpack()
		if err != nil {
			b.Fatal(err)
		}
		sinkValue = v
	}
}

func BenchmarkDataInfo_MUS(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst := make([]byte, ValueMUS.Size(sample))
		ValueMUS.Marshal(sample, dst)
		sinkBytes = dst
	}
	b.Logf("MUS size: %d bytes", len(sinkBytes))
}

func BenchmarkDataInfo_MsgPack(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = msgpack.Marshal(sample)
	}
	b.Logf("MsgPack size: %d bytes", len(sinkBytes))
}

func BenchmarkDataInfo_Json(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = json.Marshal(sample)
	}
	b.Logf("Json size: %d bytes", len(sinkBytes))
}

func BenchmarkDataInfo_JsonIter(b *testing.B) {
	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = jsonIter.Marshal(sample)
	}
	b.Logf("JsonIter size: %d bytes", len(sinkBytes))
}

func BenchmarkDataInfo_GoJson(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = goccyjson.Marshal(sample)
	}
	b.Logf("GoJson size: %d bytes", len(sinkBytes))
}

// The JSON libraries must agree with each other on Value.
func TestDataInfo_JSONLibrariesAgree(t *testing.T) {
	std, err := json.Marshal(sample)
	if err != nil {
		t.Fatal(err)
	}
	iter, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(sample)
	if err != nil {
		t.Fatal(err)
	}
	goccy, err := EncodeJSON(sample)
	if err != nil {
		t.Fatal(err)
	}
	if string(std) != string(iter) || string(std) != string(goccy) {
		t.Fatalf("json mismatch: std=%s jsoniter=%s goccy=%s", std, iter, goccy)
	}
}
