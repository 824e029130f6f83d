package view

// showListTemplate renders one card per show. Buttons carry the panel kind;
// the show id is read from the enclosing card.
const showListTemplate = `{{define "showList"}}{{range .}}<div class="Show col-md-12 col-lg-6 mb-4" id="{{.Anchor}}" data-show-id="{{.ID}}">
  <div class="media">
    <img src="{{.Image}}" alt="{{.Name}}" class="w-25 me-3">
    <div class="media-body">
      <h5 class="text-primary">{{.Name}}</h5>
      <div class="Show-summary">{{.Summary}}</div>
      <button type="button" class="btn btn-outline-light btn-sm Show-getEpisodes" data-panel="episodes">Episodes</button>
      <button type="button" class="btn btn-outline-light btn-sm Show-getGenres" data-panel="genres">Genres</button>
    </div>
  </div>
</div>
{{end}}{{end}}`

const panelItemsTemplate = `{{define "panelItems"}}{{range .}}<li>{{.}}</li>
{{end}}{{end}}`

// pageScript swaps server-rendered fragments into the page. Every request
// carries the page session rendered into <main>, so tabs keep separate panel
// state. Search responses older than the latest submitted search and stale
// panel responses are ignored.
const pageScript = `{{define "script"}}
(function () {
  "use strict";
  var showsList = document.getElementById("showsList");
  var form = document.getElementById("searchForm");
  var term = document.getElementById("searchForm-term");
  var panels = {
    episodes: { area: document.getElementById("episodesArea"), list: document.getElementById("episodesList") },
    genres: { area: document.getElementById("genresArea"), list: document.getElementById("genresList") }
  };
  var sessionHeaders = { "X-Session-ID": document.querySelector("main").getAttribute("data-session") };
  var searchSeq = 0;

  function hidePanels() {
    panels.episodes.area.style.display = "none";
    panels.genres.area.style.display = "none";
  }

  form.addEventListener("submit", function (evt) {
    evt.preventDefault();
    searchSeq += 1;
    var seq = searchSeq;
    fetch("/shows?q=" + encodeURIComponent(term.value), { headers: sessionHeaders, credentials: "same-origin" })
      .then(function (resp) { return resp.text(); })
      .then(function (html) {
        if (seq !== searchSeq) { return; }
        hidePanels();
        showsList.innerHTML = html;
      })
      .catch(function (err) { console.error(err); });
  });

  showsList.addEventListener("click", function (evt) {
    var button = evt.target.closest("button[data-panel]");
    if (!button) { return; }
    var card = button.closest(".Show");
    var body = new URLSearchParams();
    body.set("show_id", card.getAttribute("data-show-id"));
    fetch("/panels/" + button.getAttribute("data-panel") + "/toggle", { method: "POST", body: body, headers: sessionHeaders, credentials: "same-origin" })
      .then(function (resp) { return resp.json(); })
      .then(function (panel) {
        if (panel.stale) { return; }
        var target = panels[panel.panel];
        if (panel.open) {
          target.list.innerHTML = panel.html;
          target.area.style.display = "";
        } else {
          target.area.style.display = "none";
        }
      })
      .catch(function (err) { console.error(err); });
  });
})();
{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>ShowBrowser</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body class="bg-dark text-light">
  <main class="container py-4" data-session="{{.SessionID}}">
    <h1 class="mb-4">TV Show Search</h1>
    <form id="searchForm" class="d-flex mb-4" action="/" method="get">
      <input id="searchForm-term" name="q" class="form-control me-2" placeholder="Search for a show" value="{{.Query}}">
      <button type="submit" class="btn btn-primary">Go!</button>
    </form>
    <div id="showsList" class="row">{{template "showList" .Shows}}</div>
    <section id="episodesArea" style="display: none">
      <h2>Episodes</h2>
      <ul id="episodesList"></ul>
    </section>
    <section id="genresArea" style="display: none">
      <h2>Genres</h2>
      <ul id="genresList"></ul>
    </section>
  </main>
  <script>{{template "script"}}</script>
</body>
</html>
{{end}}`
