package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	httpErr, ok := ToHTTPError(ErrMemberNotInBucket)
	assert.True(t, ok)
	assert.Equal(t, "BUCKET_MISMATCH", httpErr.Code)

	wrapped := fmt.Errorf("%w: member u7", ErrAssignmentValidation)
	httpErr, ok = ToHTTPError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", httpErr.Code)

	_, ok = ToHTTPError(fmt.Errorf("disk full"))
	assert.False(t, ok)
}

func TestTeamBucket(t *testing.T) {
	testCases := []struct {
		team     Team
		bucket   Bucket
		assigned bool
	}{
		{team: TeamUnassigned, assigned: false},
		{team: TeamA, bucket: BucketATeam, assigned: true},
		{team: TeamBReserve, bucket: BucketBReserve, assigned: true},
		{team: TeamExcluded, bucket: BucketExcluded, assigned: true},
		{team: Team("C_TEAM"), bucket: BucketExcluded, assigned: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.team), func(t *testing.T) {
			bucket, ok := tc.team.Bucket()
			assert.Equal(t, tc.assigned, ok)
			if ok {
				assert.Equal(t, tc.bucket, bucket)
			}
		})
	}
}

func TestTeamForBucket(t *testing.T) {
	assert.Equal(t, TeamA, TeamForBucket(BucketATeam))
	assert.Equal(t, TeamAReserve, TeamForBucket(BucketAReserve))
	assert.Equal(t, TeamUnassigned, TeamForBucket(BucketUndecided))
	assert.Equal(t, TeamExcluded, TeamForBucket(BucketExcluded))
}

func TestValidPosition(t *testing.T) {
	assert.True(t, ValidPosition(1))
	assert.True(t, ValidPosition(MaxPosition))
	assert.True(t, ValidPosition(PositionNone))
	assert.False(t, ValidPosition(0))
	assert.False(t, ValidPosition(MaxPosition+1))
}
