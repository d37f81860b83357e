package coursetable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/courseplanner/internal/app/models"
)

func TestBucketInvariant(t *testing.T) {
	for _, size := range []uint{1, 2, 5, 7, DefaultSize} {
		t.Run(fmt.Sprintf("Size%d", size), func(t *testing.T) {
			table, err := New(size)
			require.NoError(t, err)

			code := ""
			for i := 0; i < 40; i++ {
				table.Insert(models.Course{Code: code, Name: fmt.Sprint(i)})
				code += string(rune('A' + i%26))
			}

			for i := range table.slots {
				s := &table.slots[i]
				if !s.occupied {
					require.Empty(t, s.chain)
					continue
				}
				s.each(func(e *entry) bool {
					require.Equal(t, uint(len(e.course.Code)), e.key)
					require.Equal(t, uint(i), e.key%size)
					return true
				})
			}
			require.Equal(t, 40, table.Len())
		})
	}
}

func TestChainKeepsInsertionOrder(t *testing.T) {
	table, err := New(3)
	require.NoError(t, err)

	table.Insert(models.Course{Code: "AAA", Name: "1"})
	table.Insert(models.Course{Code: "BBB", Name: "2"})
	table.Insert(models.Course{Code: "CCCCCC", Name: "3"})

	s := &table.slots[0]
	require.True(t, s.occupied)
	require.Equal(t, "AAA", s.primary.course.Code)
	require.Len(t, s.chain, 2)
	require.Equal(t, "BBB", s.chain[0].course.Code)
	require.Equal(t, "CCCCCC", s.chain[1].course.Code)
}
