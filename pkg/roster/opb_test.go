package roster

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOPB(t *testing.T) {
	m := NewModel()
	a := m.NewBool("a")
	b := m.NewBool("b")
	target := m.NewBool("t")

	m.AddExactly([]Var{a, b}, 1)
	m.AddLinearRange([]Var{a, b}, 0, 1)
	m.AddClause(a.Pos(), b.Neg())
	m.AddMaxEquality(target, []Var{a, b})

	var buf bytes.Buffer
	require.NoError(t, WriteOPB(&buf, m))

	assert.Equal(t, `* #variable= 3 #constraint= 7
+1 x1 +1 x2 = 1 ;
+1 x1 +1 x2 >= 0 ;
-1 x1 -1 x2 >= -1 ;
+1 x1 +1 ~x2 >= 1 ;
+1 ~x3 +1 x1 +1 x2 >= 1 ;
+1 x3 +1 ~x1 >= 1 ;
+1 x3 +1 ~x2 >= 1 ;
`, buf.String())
}

func TestWriteOPBEmptyModel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOPB(&buf, NewModel()))
	assert.Equal(t, "* #variable= 0 #constraint= 0\n", buf.String())
}
