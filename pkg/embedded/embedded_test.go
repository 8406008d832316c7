package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml":      {Data: []byte("tileSize: 64\n")},
		"data/maps/farm.yaml": {Data: []byte("name: farm\n")},
	}
}

func TestNotInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	if _, err := ReadFile("data/game.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if _, err := Open("data/game.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	}
	if Exists("data/game.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "普通路径", path: "data/game.yaml", want: "tileSize: 64\n"},
		{name: "带 ./ 前缀", path: "./data/maps/farm.yaml", want: "name: farm\n"},
		{name: "不存在的文件", path: "data/missing.yaml", wantErr: true},
		{name: "错误前缀", path: "assets/graphics/a.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndReadDir(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/game.yaml") {
		t.Error("data/game.yaml should exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("data/nope.yaml should not exist")
	}

	entries, err := ReadDir("data/maps")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "farm.yaml" {
		t.Errorf("ReadDir = %v, want [farm.yaml]", entries)
	}
}
