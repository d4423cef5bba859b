package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type Loader struct {
	getRoots func() ([]rootInfo, error)
}

// NewLoader compiles filePaths lazily, on first lookup. Every file must unify with schemaSrc,
// the body of a closed struct; an empty schemaSrc accepts anything.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}
				value, err := Compile(filePath, content, schemaSrc)
				if err != nil {
					return nil, err
				}
				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}
			return
		}),
	}
}

// Compile compiles CUE source and validates it against schemaSrc.
func Compile(name string, content []byte, schemaSrc string) (cue.Value, error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return cue.Value{}, err
		}
	}

	value := ctx.CompileBytes(
		content,
		cue.Filename(name),
	)
	if err := value.Err(); err != nil {
		return cue.Value{}, err
	}

	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return cue.Value{}, err
		}
	}

	return value, nil
}

type rootInfo struct {
	value cue.Value
	path  string
}

// Files returns the paths of the compiled files. It fails if any file does not compile.
func (l Loader) Files() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return ret, nil
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil && value.Exists() {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
