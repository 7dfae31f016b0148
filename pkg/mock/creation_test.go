package mock

import (
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockkit/mockkit/pkg/listeners"
)

func TestBuild_ResolvesDefaults(t *testing.T) {
	cs, err := NewSettings().Build(repositoryType)
	require.NoError(t, err)

	assert.Equal(t, repositoryType, cs.PrimaryType)
	assert.Equal(t, "repository", cs.Name)
	assert.Equal(t, MockMakerReflect, cs.MockMaker)
	assert.Equal(t, StrictnessDefault, cs.Strictness)
	assert.False(t, cs.Serializable)
	assert.False(t, cs.StubOnly)
	assert.Empty(t, cs.ExtraInterfaces)

	require.NotNil(t, cs.DefaultAnswer)
	value, answerErr := cs.DefaultAnswer.Answer(nil)
	assert.NoError(t, answerErr)
	assert.Nil(t, value)
}

func TestBuild_AssignsMockID(t *testing.T) {
	cs, err := NewSettings().Build(repositoryType)
	require.NoError(t, err)

	uuidRegex := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	assert.Regexp(t, uuidRegex, cs.MockID)
}

func TestBuild_FreshIDPerBuild(t *testing.T) {
	s := NewSettings()

	first, err := s.Build(repositoryType)
	require.NoError(t, err)
	second, err := s.Build(repositoryType)
	require.NoError(t, err)

	assert.NotEqual(t, first.MockID, second.MockID)
}

// creationDiff diffs two snapshots, ignoring the per-build MockID.
// Types, answers and listeners compare by identity.
func creationDiff(a, b *CreationSettings) string {
	return cmp.Diff(a, b,
		cmpopts.IgnoreFields(CreationSettings{}, "MockID"),
		cmp.Comparer(func(x, y reflect.Type) bool { return x == y }),
		cmp.Comparer(func(x, y Answer) bool {
			return reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
		}),
		cmp.Comparer(func(x, y listeners.InvocationListener) bool { return x == y }),
		cmp.Comparer(func(x, y listeners.StubbingLookupListener) bool { return x == y }),
		cmp.Comparer(func(x, y listeners.VerificationStartedListener) bool { return x == y }),
	)
}

func TestBuild_RepeatedBuildsMatch(t *testing.T) {
	s := NewSettings().
		WithName("paymentGateway").
		WithExtraInterfaces(closerType).
		WithSerializable().
		WithStrictness(StrictnessWarn).
		AddInvocationListeners(listeners.NewRecorder(10))

	first, err := s.Build(repositoryType)
	require.NoError(t, err)
	second, err := s.Build(repositoryType)
	require.NoError(t, err)

	if diff := creationDiff(first, second); diff != "" {
		t.Errorf("repeated builds disagree (-first +second):\n%s", diff)
	}
}

func TestBuild_KeepsExplicitConfiguration(t *testing.T) {
	answer := AnswerFunc(func(*listeners.Invocation) (any, error) {
		return "stubbed", nil
	})

	cs, err := NewSettings().
		WithName("userRepository").
		WithExtraInterfaces(closerType, readerType).
		WithSerializable().
		WithStubOnly().
		WithStrictness(StrictnessStrictStubs).
		WithDefaultAnswer(answer).
		WithMockMaker(MockMakerSource).
		Build(repositoryType)
	require.NoError(t, err)

	assert.Equal(t, "userRepository", cs.Name)
	assert.Equal(t, []reflect.Type{closerType, readerType}, cs.ExtraInterfaces)
	assert.True(t, cs.Serializable)
	assert.True(t, cs.StubOnly)
	assert.Equal(t, StrictnessStrictStubs, cs.Strictness)
	assert.Equal(t, MockMakerSource, cs.MockMaker)

	value, answerErr := cs.DefaultAnswer.Answer(nil)
	require.NoError(t, answerErr)
	assert.Equal(t, "stubbed", value)
}

func TestBuild_NilPrimaryType(t *testing.T) {
	_, err := NewSettings().Build(nil)

	require.Error(t, err)
	assert.EqualError(t, err, "Build() requires a primary interface type")
}

func TestBuild_NonInterfacePrimaryType(t *testing.T) {
	_, err := NewSettings().Build(reflect.TypeOf(42))

	require.Error(t, err)
	assert.EqualError(t, err, "Build() accepts only interfaces, got int")
}

func TestBuild_RejectsPrimaryTypeInExtraInterfaces(t *testing.T) {
	_, err := NewSettings().
		WithExtraInterfaces(closerType, repositoryType).
		Build(repositoryType)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain the mocked type")

	var confErr *InvalidConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "Build", confErr.Operation)
}

func TestBuild_SnapshotIsIsolatedFromSettings(t *testing.T) {
	l := &stubInvocationListener{tag: "original"}
	s := NewSettings().
		WithExtraInterfaces(closerType).
		AddInvocationListeners(l)

	cs, err := s.Build(repositoryType)
	require.NoError(t, err)

	// Mutating the settings after Build must not change the snapshot.
	s.WithExtraInterfaces(readerType)
	s.AddInvocationListeners(&stubInvocationListener{tag: "late"})

	assert.Equal(t, []reflect.Type{closerType}, cs.ExtraInterfaces)
	require.Len(t, cs.InvocationListeners, 1)
	assert.Same(t, l, cs.InvocationListeners[0])
}

func TestMustBuild(t *testing.T) {
	cs := NewSettings().WithName("n").MustBuild(repositoryType)
	assert.Equal(t, "n", cs.Name)

	assert.Panics(t, func() {
		NewSettings().MustBuild(nil)
	})
}

func TestBuild_ErrorIsDetectableWithErrorsAs(t *testing.T) {
	_, err := NewSettings().Build(nil)
	require.Error(t, err)

	var confErr *InvalidConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

// recordingInvocationListener records the order it was called in
// through a shared journal.
type recordingInvocationListener struct {
	tag     string
	journal *[]string
}

func (l *recordingInvocationListener) ReportInvocation(*listeners.InvocationReport) {
	*l.journal = append(*l.journal, l.tag)
}

func TestCreationSettings_NotifyInvocation_RegistrationOrder(t *testing.T) {
	var journal []string

	cs, err := NewSettings().
		AddInvocationListeners(
			&recordingInvocationListener{tag: "first", journal: &journal},
			&recordingInvocationListener{tag: "second", journal: &journal},
		).
		AddInvocationListeners(&recordingInvocationListener{tag: "third", journal: &journal}).
		Build(repositoryType)
	require.NoError(t, err)

	cs.NotifyInvocation(&listeners.InvocationReport{
		Invocation: &listeners.Invocation{MockName: cs.Name, Method: "FindByID"},
	})

	assert.Equal(t, []string{"first", "second", "third"}, journal)
}

type recordingLookupListener struct {
	events []*listeners.StubbingLookupEvent
}

func (l *recordingLookupListener) OnStubbingLookup(event *listeners.StubbingLookupEvent) {
	l.events = append(l.events, event)
}

func TestCreationSettings_NotifyStubbingLookup(t *testing.T) {
	recorder := &recordingLookupListener{}

	cs, err := NewSettings().
		AddStubbingLookupListeners(recorder).
		Build(repositoryType)
	require.NoError(t, err)

	event := &listeners.StubbingLookupEvent{
		Invocation: &listeners.Invocation{MockName: cs.Name, Method: "FindByID"},
		MockName:   cs.Name,
	}
	cs.NotifyStubbingLookup(event)

	require.Len(t, recorder.events, 1)
	assert.Same(t, event, recorder.events[0])
}

// substitutingVerificationListener swaps the mock under verification.
type substitutingVerificationListener struct {
	replacement any
}

func (l *substitutingVerificationListener) OnVerificationStarted(event *listeners.VerificationStartedEvent) {
	event.SetMock(l.replacement)
}

func TestCreationSettings_StartVerification(t *testing.T) {
	original := &struct{ label string }{label: "original"}
	replacement := &struct{ label string }{label: "replacement"}

	cs, err := NewSettings().
		AddVerificationStartedListeners(&substitutingVerificationListener{replacement: replacement}).
		Build(repositoryType)
	require.NoError(t, err)

	got := cs.StartVerification(original)
	assert.Same(t, replacement, got)
}

func TestCreationSettings_StartVerification_NoListeners(t *testing.T) {
	cs, err := NewSettings().Build(repositoryType)
	require.NoError(t, err)

	original := &struct{}{}
	assert.Same(t, original, cs.StartVerification(original))
}

func TestCreationSettings_Implements(t *testing.T) {
	cs, err := NewSettings().
		WithExtraInterfaces(closerType).
		Build(repositoryType)
	require.NoError(t, err)

	assert.True(t, cs.Implements(repositoryType))
	assert.True(t, cs.Implements(closerType))
	assert.False(t, cs.Implements(readerType))
	assert.False(t, cs.Implements(nil))
}

func BenchmarkBuild(b *testing.B) {
	s := NewSettings().
		WithName("userRepository").
		WithExtraInterfaces(closerType).
		AddInvocationListeners(listeners.NewRecorder(100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Build(repositoryType); err != nil {
			b.Fatal(err)
		}
	}
}
