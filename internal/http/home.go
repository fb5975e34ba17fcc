package http

import (
	"net/http"

	"go.uber.org/zap"
)

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>Playlist Fetch</title>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .header { color: #333; }
        input[type=text] { width: 480px; padding: 6px; }
        table { border-collapse: collapse; margin-top: 20px; }
        td, th { border-bottom: 1px solid #ddd; padding: 6px 12px; text-align: left; }
        .error { color: #c00; }
    </style>
</head>
<body>
    <h1 class="header">Playlist Fetch</h1>
    <p>Paste a Spotify playlist link to list its tracks.</p>

    <form id="playlist-form">
        <input type="text" id="playlist-link" placeholder="https://open.spotify.com/playlist/...">
        <button type="submit">Fetch</button>
    </form>

    <p id="message" class="error"></p>
    <table id="tracks"></table>

    <script>
        document.getElementById("playlist-form").addEventListener("submit", async (event) => {
            event.preventDefault();
            const message = document.getElementById("message");
            const table = document.getElementById("tracks");
            message.textContent = "";
            table.innerHTML = "";

            const response = await fetch("/api/fetch-playlist", {
                method: "POST",
                headers: { "Content-Type": "application/json" },
                body: JSON.stringify({ playlist_link: document.getElementById("playlist-link").value }),
            });
            const data = await response.json();
            if (!response.ok) {
                message.textContent = data.error;
                return;
            }

            const header = table.insertRow();
            header.innerHTML = "<th>Track</th><th>Artists</th>";
            for (const track of data.tracks) {
                const row = table.insertRow();
                row.insertCell().textContent = track.name;
                row.insertCell().textContent = track.artists;
            }
        });
    </script>
</body>
</html>`

func homeHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(homePage)); err != nil {
			logger.Debug("Failed to write home page", zap.Error(err))
		}
	}
}
