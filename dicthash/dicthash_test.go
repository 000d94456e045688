// Copyright 2024 The Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicthash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64IsDeterministic(t *testing.T) {
	require.Equal(t, Sum64([]byte("hello")), Sum64([]byte("hello")))
}

func TestSum64DistinguishesKeys(t *testing.T) {
	require.NotEqual(t, Sum64([]byte("hello")), Sum64([]byte("world")))
}

func TestSum64StringMatchesSum64(t *testing.T) {
	require.Equal(t, Sum64([]byte("matching")), Sum64String("matching"))
}

func TestSum64Empty(t *testing.T) {
	require.Equal(t, Sum64(nil), Sum64([]byte{}))
}
