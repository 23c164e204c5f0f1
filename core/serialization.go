package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the stored record types. The vocabulary store holds a
// single small record type, so these are written by hand rather than
// generated.
var (
	IDMUS              = idMUS{}
	VocabularyEntryMUS = vocabularyEntryMUS{}

	vectorMUS  = ord.NewSliceSer[float32](raw.Float32)
	stringsMUS = ord.NewSliceSer[string](ord.String)
)

var (
	_ mus.Serializer[ID]              = IDMUS
	_ mus.Serializer[VocabularyEntry] = VocabularyEntryMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type vocabularyEntryMUS struct{}

func (vocabularyEntryMUS) Marshal(e VocabularyEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Term, bs[n:])
	n += vectorMUS.Marshal(e.Vector, bs[n:])
	n += stringsMUS.Marshal(e.MappedNotes, bs[n:])
	n += stringsMUS.Marshal(e.MappedProcesses, bs[n:])
	n += varint.Uint64.Marshal(e.Seq, bs[n:])
	// Timestamps as unix micro
	n += varint.Int64.Marshal(e.InsertedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(e.UpdatedAt.UnixMicro(), bs[n:])
	return n
}

func (vocabularyEntryMUS) Unmarshal(bs []byte) (e VocabularyEntry, n int, err error) {
	var n1 int
	e.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Term, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.MappedNotes, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.MappedProcesses, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Seq, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.InsertedAt = time.UnixMicro(micros).UTC()
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.UpdatedAt = time.UnixMicro(micros).UTC()
	return
}

func (vocabularyEntryMUS) Size(e VocabularyEntry) (size int) {
	size = IDMUS.Size(e.Id)
	size += ord.String.Size(e.Term)
	size += vectorMUS.Size(e.Vector)
	size += stringsMUS.Size(e.MappedNotes)
	size += stringsMUS.Size(e.MappedProcesses)
	size += varint.Uint64.Size(e.Seq)
	size += varint.Int64.Size(e.InsertedAt.UnixMicro())
	size += varint.Int64.Size(e.UpdatedAt.UnixMicro())
	return size
}

func (vocabularyEntryMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	for _, skip := range []func([]byte) (int, error){
		ord.String.Skip,
		vectorMUS.Skip,
		stringsMUS.Skip,
		stringsMUS.Skip,
		varint.Uint64.Skip,
		varint.Int64.Skip,
		varint.Int64.Skip,
	} {
		n1, err = skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
