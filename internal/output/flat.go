package output

import (
	"strings"

	"label-translator/internal/common"
	"label-translator/internal/logger"
	"label-translator/internal/mapping"
	"label-translator/internal/pvl"
	"label-translator/internal/resolve"
)

// FlatBuilder writes resolved groups into a PVL label.
type FlatBuilder struct {
	resolver *resolve.Resolver
	log      logger.ILogger
}

// NewFlatBuilder creates a FlatBuilder.
func NewFlatBuilder(r *resolve.Resolver, l logger.ILogger) *FlatBuilder {
	return &FlatBuilder{resolver: r, log: logger.OrNull(l)}
}

// Keyword resolves one group into a keyword holding one value per input
// value, each with its own unit.
func (b *FlatBuilder) Keyword(group string) (*pvl.Keyword, error) {
	values, err := b.resolver.ResolveAll(group)
	if err != nil {
		return nil, err
	}

	kw := &pvl.Keyword{Name: values[0].Name}
	for _, v := range values {
		kw.Values = append(kw.Values, pvl.Value{Text: v.Value, Unit: v.Unit})
	}

	return kw, nil
}

// Auto runs every Auto group into root. A keyword already present at the
// output position is replaced.
func (b *FlatBuilder) Auto(root *pvl.Object) error {
	for _, g := range b.resolver.Table().AutoGroups() {
		kw, err := b.Keyword(g.Name)
		if err != nil {
			if g.Optional && resolve.IsMissingInput(err) {
				b.log.Debugf("skipping optional group %s: %v", g.Name, err)
				continue
			}

			return err
		}

		FlatContainer(root, g.OutputPosition).SetKeyword(kw)
	}

	return nil
}

// FlatContainer finds or creates the container at position. A position
// is either kind/name pairs ("Object", "IsisCube", "Group", "Instrument")
// or plain names, where the last name is a group and the rest objects.
// An empty position or "ROOT" is root itself; "new@NAME" always creates.
func FlatContainer(root *pvl.Object, position []string) *pvl.Object {
	if common.IsEmpty(position) || (common.IsSingle(position) && strings.EqualFold(position[0], common.RootName)) {
		return root
	}

	if steps, ok := kindPairs(position); ok {
		cur := root
		for _, s := range steps {
			cur = flatStep(cur, s.kind, s.token)
		}

		return cur
	}

	tokens := mapping.ParsePosition(position)
	cur := root

	for i, t := range tokens {
		kind := pvl.KindObject
		if i == len(tokens)-1 {
			kind = pvl.KindGroup
		}

		cur = flatStep(cur, kind, t)
	}

	return cur
}

type flatStepSpec struct {
	kind  pvl.Kind
	token mapping.PositionToken
}

func kindPairs(position []string) ([]flatStepSpec, bool) {
	if len(position)%2 != 0 {
		return nil, false
	}

	steps := make([]flatStepSpec, 0, len(position)/2)

	for i := 0; i < len(position); i += 2 {
		kind, ok := pvl.ParseKind(position[i])
		if !ok {
			return nil, false
		}

		token := mapping.ParsePosition(position[i+1 : i+2])[0]
		steps = append(steps, flatStepSpec{kind: kind, token: token})
	}

	return steps, true
}

func flatStep(cur *pvl.Object, kind pvl.Kind, t mapping.PositionToken) *pvl.Object {
	if t.New {
		return cur.AddChild(kind, t.Name)
	}

	return cur.FindOrAddChild(kind, t.Name)
}
