package storage

import "testing"

func TestResolveKey(t *testing.T) {
	cases := []struct {
		name    string
		rawURL  string
		bucket  string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "public url",
			rawURL:  "https://x/storage/v1/object/public/photos/a/b.jpg",
			bucket:  "photos",
			wantKey: "a/b.jpg",
			wantOK:  true,
		},
		{
			name:    "nested key",
			rawURL:  "https://proj.supabase.co/storage/v1/object/public/user-activity-photos/profile-7/2026/08/snap.png",
			bucket:  "user-activity-photos",
			wantKey: "profile-7/2026/08/snap.png",
			wantOK:  true,
		},
		{
			name:   "wrong bucket",
			rawURL: "https://x/storage/v1/object/public/photos/a/b.jpg",
			bucket: "avatars",
		},
		{
			name:   "no public prefix",
			rawURL: "https://x/storage/v1/object/photos/a/b.jpg",
			bucket: "photos",
		},
		{
			name:   "empty url",
			rawURL: "",
			bucket: "photos",
		},
		{
			name:   "garbage input",
			rawURL: "not a url at all",
			bucket: "photos",
		},
		{
			name:   "prefix but empty key",
			rawURL: "https://x/storage/v1/object/public/photos/",
			bucket: "photos",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := ResolveKey(tc.rawURL, tc.bucket)
			if ok != tc.wantOK {
				t.Fatalf("ResolveKey ok = %v, want %v", ok, tc.wantOK)
			}
			if key != tc.wantKey {
				t.Fatalf("ResolveKey key = %q, want %q", key, tc.wantKey)
			}
		})
	}
}
