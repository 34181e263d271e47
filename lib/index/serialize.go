package index

import (
	"encoding/gob"
	"os"
)

// indexFile is the on-disk layout of a saved index
type indexFile struct {
	Names    []string
	Refs     [][]uint8
	SA       []int32
	BWT      []uint8
	Counts   []int32
	Occ      [][]int32
	Sigma    int
	Reversed bool
}

// Save writes the index to path
func (idx *Index) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	data := indexFile{
		SA:       idx.sa,
		BWT:      idx.bwt,
		Counts:   idx.counts,
		Occ:      idx.occ,
		Sigma:    idx.sigma,
		Reversed: idx.reversed,
	}
	for i := 0; i < idx.tc.Size(); i++ {
		data.Names = append(data.Names, idx.tc.Name(i))
		data.Refs = append(data.Refs, idx.tc.Ref(i))
	}
	logger.Infof("Save index to %s", path)
	return gob.NewEncoder(file).Encode(data)
}

// Load reads an index previously written by Save
func Load(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	data := indexFile{}
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	tc := NewTextCollection()
	for i, name := range data.Names {
		tc.Add(name, data.Refs[i])
	}
	idx := Index{
		tc:       tc,
		sa:       data.SA,
		bwt:      data.BWT,
		counts:   data.Counts,
		occ:      data.Occ,
		sigma:    data.Sigma,
		n:        len(data.BWT),
		reversed: data.Reversed,
	}
	logger.Infof("Loaded index from %s, %d references", path, tc.Size())
	return &idx, nil
}
